package systems

import (
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems/factory"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs each enemy's behaviour and then its contact damage.
func UpdateEnemies(e *ecs.ECS) {
	ctx, ok := newTickContext(e)
	if !ok {
		return
	}

	// Snapshot first: a hit can end the run mid-loop, and the boss update
	// must not observe entries created this tick.
	var enemies []*donburi.Entry
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		enemies = append(enemies, entry)
	})

	for _, entry := range enemies {
		if !entry.Valid() || components.Health.Get(entry).Dead() {
			continue
		}
		updateEnemy(ctx, entry)
	}
}

func updateEnemy(ctx *tickContext, entry *donburi.Entry) {
	enemy := components.Enemy.Get(entry)

	switch enemy.Kind {
	case components.EnemyBasic, components.EnemyTank:
		updatePatrol(ctx, entry, enemy)
	case components.EnemyFlying:
		updateChase(ctx, entry, enemy)
	case components.EnemyBoss:
		updateBoss(ctx, entry, enemy)
	}

	applyContactDamage(ctx, entry, enemy)
}

func updatePatrol(ctx *tickContext, entry *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(entry).Object
	physics := components.Physics.Get(entry)

	enemy.TurnTimer--
	if enemy.TurnTimer <= 0 {
		enemy.Direction = -enemy.Direction
		enemy.TurnTimer = factory.RandomTurnTimer(ctx.rng)
	}

	step := enemy.Direction * enemy.Stats.Speed
	if ground := physics.OnGround; ground != nil {
		nextX := obj.X + step
		if nextX < ground.X || nextX+obj.W > ground.X+ground.W {
			enemy.Direction = -enemy.Direction
			step = -step
		}
	}
	physics.SpeedX = step

	applyGravity(physics, cfg.Physics.MaxFallSpeed)

	prevBottom := obj.Y + obj.H
	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY
	obj.Update()
	resolveLanding(obj, physics, prevBottom)
}

func updateChase(ctx *tickContext, entry *donburi.Entry, enemy *components.EnemyData) {
	obj := components.Object.Get(entry).Object
	target := ctx.playerRect()

	speed := enemy.Stats.Speed
	obj.X += approach(obj.X, target.X, speed)
	obj.Y += approach(obj.Y, target.Y, speed)
	obj.Update()
}

// approach returns a step of at most speed from current toward target.
func approach(current, target, speed float64) float64 {
	switch d := target - current; {
	case d > speed:
		return speed
	case d < -speed:
		return -speed
	default:
		return d
	}
}

func applyContactDamage(ctx *tickContext, entry *donburi.Entry, enemy *components.EnemyData) {
	if enemy.ContactCooldown > 0 {
		enemy.ContactCooldown--
		return
	}
	body := components.Object.Get(entry).Rect()
	if !body.Overlaps(ctx.playerRect()) {
		return
	}
	damagePlayer(ctx, enemy.Stats.Damage)
	enemy.ContactCooldown = cfg.Enemy.ContactCooldown
}

// DamageEnemy subtracts health from an enemy or the boss. Dead enemies stay
// in the world until the sweep credits and removes them.
func DamageEnemy(entry *donburi.Entry, amount int) bool {
	if !entry.Valid() {
		return false
	}
	return components.Health.Get(entry).Damage(amount)
}
