package systems

import (
	"fmt"
	"log"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems/factory"
	"github.com/automoto/gunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression advances to the next level once the enemy set is empty
// and the boss slot is clear.
func UpdateProgression(e *ecs.ECS) {
	ctx, ok := newTickContext(e)
	if !ok || ctx.session.GameOver {
		return
	}
	if LevelComplete(e) {
		AdvanceLevel(e)
	}
}

func LevelComplete(e *ecs.ECS) bool {
	session := GetSession(e)
	if session == nil || session.Boss != nil {
		return false
	}
	_, anyEnemy := tags.Enemy.First(e.World)
	return !anyEnemy
}

func AdvanceLevel(e *ecs.ECS) {
	session := GetSession(e)
	if session == nil {
		return
	}
	session.CurrentLevel++
	StartLevel(e, session.CurrentLevel)
}

// StartLevel loads level n, respawns the player at the session checkpoint
// and spawns the level's wave.
func StartLevel(e *ecs.ECS, n int) {
	ctx, ok := newTickContext(e)
	if !ok {
		return
	}
	ctx.session.CurrentLevel = n

	if _, err := LoadLevel(e, LevelKey(n)); err != nil {
		// The default layout is embedded; failing to load it is a build defect.
		panic(err)
	}

	respawnPlayer(ctx)
	ClearProjectiles(e)
	clearEnemies(ctx)
	SpawnWave(ctx, n)
	ShowBanner(e, fmt.Sprintf("LEVEL %d", n))
}

func respawnPlayer(ctx *tickContext) {
	obj := components.Object.Get(ctx.player).Object
	obj.X = ctx.session.CheckpointX
	obj.Y = ctx.session.CheckpointY
	obj.Update()

	physics := components.Physics.Get(ctx.player)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil

	components.Player.Get(ctx.player).DoubleJumpReady = cfg.Player.DoubleJumpEnabled
}

func clearEnemies(ctx *tickContext) {
	var leftover []*donburi.Entry
	tags.Enemy.Each(ctx.ecs.World, func(entry *donburi.Entry) {
		leftover = append(leftover, entry)
	})
	for _, entry := range leftover {
		factory.Destroy(ctx.ecs, entry)
	}
	ctx.session.Boss = nil
}

// SpawnWave creates the standard wave for level n, the boss on boss
// levels, and any extra enemies the layout places.
func SpawnWave(ctx *tickContext, n int) {
	lc := cfg.Level
	for i := 0; i < lc.BasicWaveCount; i++ {
		x := lc.BasicWaveX + float64(i)*lc.BasicWaveSpacing
		factory.CreateEnemy(ctx.ecs, components.EnemyBasic, x, lc.BasicWaveY, ctx.rng)
	}

	if n >= lc.FlyingFromLevel {
		for i := 0; i < lc.FlyingWaveCount; i++ {
			x := lc.FlyingWaveX + float64(i)*lc.FlyingWaveSpacing
			factory.CreateEnemy(ctx.ecs, components.EnemyFlying, x, lc.FlyingWaveY, ctx.rng)
		}
	}

	if lc.BossEvery > 0 && n%lc.BossEvery == 0 {
		ctx.session.Boss = factory.CreateBoss(ctx.ecs, cfg.Boss.SpawnX, cfg.Boss.SpawnY)
	}

	level, ok := components.Level.First(ctx.ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(level)
	for _, spawn := range levelData.EnemySpawns {
		kind, ok := components.ParseEnemyKind(spawn.EnemyType)
		if !ok {
			log.Printf("Warning: unknown enemy type %q in %s", spawn.EnemyType, levelData.Layout)
			continue
		}
		if kind == components.EnemyBoss {
			if ctx.session.Boss != nil {
				continue
			}
			ctx.session.Boss = factory.CreateBoss(ctx.ecs, spawn.X, spawn.Y)
			continue
		}
		factory.CreateEnemy(ctx.ecs, kind, spawn.X, spawn.Y, ctx.rng)
	}
}

// StartRun sets up a fresh world: collision space, session, player and the
// first level.
func StartRun(e *ecs.ECS, level int, seed int64) {
	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateSession(e, level, seed)
	factory.CreatePlayer(e, cfg.Player.StartX, cfg.Player.StartY)
	StartLevel(e, level)
}
