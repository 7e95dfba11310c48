package archetypes

import (
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Health,
		components.Physics,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Object,
		components.Health,
		components.Physics,
	)
	Boss = newArchetype(
		tags.Enemy,
		tags.Boss,
		components.Enemy,
		components.Boss,
		components.Object,
		components.Health,
		components.Physics,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
		components.Shop,
		components.HUD,
		components.Random,
	)
)

// archetype is a fixed component set. Every entity lives on the default
// layer.
type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{components: cs}
}

// Spawn creates an entity with the archetype's components plus extra.
func (a *archetype) Spawn(ecs *ecs.ECS, extra ...donburi.IComponentType) *donburi.Entry {
	cs := make([]donburi.IComponentType, 0, len(a.components)+len(extra))
	cs = append(cs, a.components...)
	cs = append(cs, extra...)
	return ecs.World.Entry(ecs.Create(cfg.Default, cs...))
}
