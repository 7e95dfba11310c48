package factory

import (
	"math/rand"

	"github.com/automoto/gunner/archetypes"
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a regular enemy. The boss has its own constructor.
func CreateEnemy(ecs *ecs.ECS, kind components.EnemyKind, x, y float64, rng *rand.Rand) *donburi.Entry {
	if kind == components.EnemyBoss {
		return CreateBoss(ecs, x, y)
	}
	stats := cfg.Enemy.Types[kind.String()]

	enemy := archetypes.Enemy.Spawn(ecs)
	initEnemy(ecs, enemy, kind, stats, x, y)

	data := components.Enemy.Get(enemy)
	data.Direction = cfg.DirectionLeft
	data.TurnTimer = RandomTurnTimer(rng)

	return enemy
}

// CreateBoss spawns the boss at (x, y) in phase 1.
func CreateBoss(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	stats := cfg.Enemy.Types[cfg.KindBoss]

	boss := archetypes.Boss.Spawn(ecs)
	initEnemy(ecs, boss, components.EnemyBoss, stats, x, y)

	components.Boss.SetValue(boss, components.BossData{
		Phase:        1,
		PatternTimer: cfg.Boss.PhaseCadence[0],
	})
	return boss
}

func initEnemy(ecs *ecs.ECS, e *donburi.Entry, kind components.EnemyKind, stats cfg.EnemyTypeConfig, x, y float64) {
	attachBody(ecs, e, x, y, stats.Width, stats.Height, tags.ResolvEnemy)

	components.Enemy.SetValue(e, components.EnemyData{
		Kind:  kind,
		Stats: stats,
	})
	components.Health.SetValue(e, components.HealthData{
		Current: stats.Health,
		Max:     stats.Health,
	})
	components.Physics.SetValue(e, components.PhysicsData{
		Gravity: stats.Gravity,
	})
}

// RandomTurnTimer picks a patrol turn delay in [TurnTimerMin, TurnTimerMax].
func RandomTurnTimer(rng *rand.Rand) int {
	span := cfg.Enemy.TurnTimerMax - cfg.Enemy.TurnTimerMin + 1
	if span <= 1 || rng == nil {
		return cfg.Enemy.TurnTimerMin
	}
	return cfg.Enemy.TurnTimerMin + rng.Intn(span)
}
