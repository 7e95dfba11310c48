package factory

import (
	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates an inactive checkpoint trigger.
func CreateCheckpoint(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)
	attachBody(ecs, checkpoint, x, y, w, h, tags.ResolvCheckpoint)
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{})
	return checkpoint
}
