package systems

import (
	"testing"

	"github.com/automoto/gunner/components"
	"github.com/automoto/gunner/systems/factory"
	"github.com/automoto/gunner/tags"
)

func TestProjectileHitsOneEnemy(t *testing.T) {
	e := newTestRun(t, 1)

	basics := enemiesOfKind(e, components.EnemyBasic)
	a, b := basics[0], basics[1]
	aObj := components.Object.Get(a).Object
	bObj := components.Object.Get(b).Object
	bObj.X, bObj.Y = aObj.X, aObj.Y
	bObj.Update()

	factory.CreateProjectile(e, components.ProjectileData{
		X: aObj.X + 25, Y: aObj.Y + 25, Damage: 10, Size: 5, Lifetime: 100,
	})
	UpdateProjectiles(e)

	total := components.Health.Get(a).Current + components.Health.Get(b).Current
	if total != 50 {
		t.Errorf("combined health = %d, want 50", total)
	}
	if n := len(entries(e, tags.Projectile)); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
}

func TestProjectileMovesAndExpires(t *testing.T) {
	e := newTestRun(t, 1)

	shot := factory.CreateProjectile(e, components.ProjectileData{
		X: 640, Y: 100, VelX: 10, Damage: 10, Size: 5, Lifetime: 2,
	})
	UpdateProjectiles(e)

	p := components.Projectile.Get(shot)
	obj := components.Object.Get(shot).Object
	if p.X != 650 || obj.X != 645 || obj.Y != 95 {
		t.Errorf("projectile at %v, box at (%v, %v)", p.X, obj.X, obj.Y)
	}

	UpdateProjectiles(e)
	if n := len(entries(e, tags.Projectile)); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
}

func TestProjectileIgnoresDeadEnemies(t *testing.T) {
	e := newTestRun(t, 1)

	target := enemiesOfKind(e, components.EnemyBasic)[0]
	DamageEnemy(target, 1000)
	obj := components.Object.Get(target).Object

	factory.CreateProjectile(e, components.ProjectileData{
		X: obj.X + 25, Y: obj.Y + 25, Damage: 10, Size: 5, Lifetime: 100,
	})
	UpdateProjectiles(e)

	if n := len(entries(e, tags.Projectile)); n != 1 {
		t.Errorf("projectiles = %d, want 1", n)
	}
}
