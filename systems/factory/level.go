package factory

import (
	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/assets"
	"github.com/automoto/gunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel returns the level singleton, creating it on first use.
func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Level.First(ecs.World); ok {
		return entry
	}
	return archetypes.Level.Spawn(ecs)
}

// BuildLevel creates the platforms and checkpoints of layout. The caller
// removes the previous level's geometry first.
func BuildLevel(ecs *ecs.ECS, key string, layout assets.Layout) *donburi.Entry {
	for _, p := range layout.Platforms {
		CreatePlatform(ecs, p)
	}
	for _, c := range layout.Checkpoints {
		CreateCheckpoint(ecs, c.X, c.Y, c.Width, c.Height)
	}

	level := CreateLevel(ecs)
	components.Level.SetValue(level, components.LevelData{
		Key:         key,
		Layout:      layout.Name,
		Width:       layout.Width,
		Height:      layout.Height,
		EnemySpawns: layout.EnemySpawns,
	})
	return level
}
