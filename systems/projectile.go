package systems

import (
	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/systems/factory"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves the player's shots, ages them out and applies hits.
// A shot damages at most one enemy and is consumed by the hit.
func UpdateProjectiles(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		obj := components.Object.Get(e)

		p.Step()
		obj.X = p.X - p.Size
		obj.Y = p.Y - p.Size
		obj.Update()

		if p.Expired() {
			toRemove = append(toRemove, e)
			return
		}

		if hitEnemy(obj, p) {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.Destroy(ecs, e)
	}
}

func hitEnemy(obj *components.ObjectData, p *components.ProjectileData) bool {
	for _, o := range overlapping(obj.Object, tags.ResolvEnemy) {
		enemy, ok := o.Data.(*donburi.Entry)
		if !ok || enemy == nil || !enemy.Valid() {
			continue
		}
		if components.Health.Get(enemy).Dead() {
			continue
		}
		DamageEnemy(enemy, p.Damage)
		return true
	}
	return false
}

// ClearProjectiles removes every player shot.
func ClearProjectiles(ecs *ecs.ECS) {
	var all []*donburi.Entry
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		all = append(all, e)
	})
	for _, e := range all {
		factory.Destroy(ecs, e)
	}
}
