package factory

import (
	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player holding a copy of the first catalog weapon.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	attachBody(ecs, player, x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)

	var weapons []components.Weapon
	if len(cfg.Weapon.Catalog) > 0 {
		weapons = append(weapons, components.NewWeapon(cfg.Weapon.Catalog[0]))
	}
	components.Player.SetValue(player, components.PlayerData{
		Facing:          cfg.DirectionRight,
		DoubleJumpReady: cfg.Player.DoubleJumpEnabled,
		Weapons:         weapons,
	})

	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	components.Physics.SetValue(player, components.PhysicsData{
		Gravity: cfg.Player.Gravity,
	})

	return player
}
