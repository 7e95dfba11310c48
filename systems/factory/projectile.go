package factory

import (
	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a player shot. The collision box is the square
// around the projectile's circle.
func CreateProjectile(ecs *ecs.ECS, data components.ProjectileData) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	r := data.Rect()
	attachBody(ecs, p, r.X, r.Y, r.W, r.H, tags.ResolvProjectile)
	components.Projectile.SetValue(p, data)
	return p
}
