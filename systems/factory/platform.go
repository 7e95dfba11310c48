package factory

import (
	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/assets"
	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform creates a solid. Moving platforms start heading right.
func CreatePlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	attachBody(ecs, platform, spawn.X, spawn.Y, spawn.Width, spawn.Height, tags.ResolvSolid)
	components.Platform.SetValue(platform, components.PlatformData{
		Color:     spawn.Color,
		Moving:    spawn.Moving,
		Direction: 1,
	})

	return platform
}
