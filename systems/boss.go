package systems

import (
	"math"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/yohamta/donburi"
)

// Boss attack patterns.
const (
	PatternHeavy = iota
	PatternSpread
	PatternRing
	PatternBurst
	PatternRain
)

// BossPhase derives the phase from health alone. It makes no assumption
// that health only goes down.
func BossPhase(current, maxHealth int) int {
	c, m := float64(current), float64(maxHealth)
	switch {
	case c < m*cfg.Boss.Phase3Threshold:
		return 3
	case c < m*cfg.Boss.Phase2Threshold:
		return 2
	}
	return 1
}

func updateBoss(ctx *tickContext, entry *donburi.Entry, enemy *components.EnemyData) {
	boss := components.Boss.Get(entry)
	health := components.Health.Get(entry)
	obj := components.Object.Get(entry).Object

	boss.Phase = BossPhase(health.Current, health.Max)
	idx := boss.Phase - 1

	// Chase the player horizontally, hovering at the spawn height.
	target := ctx.playerRect()
	bossCentre := obj.X + obj.W/2
	playerCentre := target.X + target.W/2
	obj.X += approach(bossCentre, playerCentre, cfg.Boss.PhaseSpeeds[idx])
	obj.Update()

	if boss.PatternTimer <= 0 {
		boss.Pattern = nextPattern(ctx, boss)
		performAttack(ctx, entry, boss)
		boss.PatternTimer = cfg.Boss.PhaseCadence[idx]
	} else {
		boss.PatternTimer--
	}

	updateBossProjectiles(ctx, boss)
}

func nextPattern(ctx *tickContext, boss *components.BossData) int {
	switch boss.Phase {
	case 2:
		return (boss.Pattern + 1) % cfg.Boss.RotatingPatterns
	case 3:
		return ctx.rng.Intn(cfg.Boss.TotalPatterns)
	}
	return PatternHeavy
}

// performAttack spawns the current pattern's shots into the boss's own
// projectile list.
func performAttack(ctx *tickContext, entry *donburi.Entry, boss *components.BossData) {
	obj := components.Object.Get(entry).Object
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2

	target := ctx.playerRect()
	tx, ty := target.X+target.W/2, target.Y+target.H/2
	aim := math.Atan2(ty-cy, tx-cx)

	speed := cfg.Boss.ProjectileSpeed
	shot := func(x, y, angle float64) components.ProjectileData {
		return components.ProjectileData{
			X:        x,
			Y:        y,
			VelX:     math.Cos(angle) * speed,
			VelY:     math.Sin(angle) * speed,
			Damage:   cfg.Boss.ProjectileDamage,
			Size:     cfg.Boss.ProjectileSize,
			Color:    cfg.Boss.ProjectileColor,
			Lifetime: cfg.Projectile.Lifetime,
		}
	}

	switch boss.Pattern {
	case PatternHeavy:
		p := shot(cx, cy, aim)
		p.Damage = cfg.Boss.HeavyDamage
		p.Size = cfg.Boss.HeavySize
		p.Color = cfg.Boss.HeavyColor
		boss.Projectiles = append(boss.Projectiles, p)

	case PatternSpread:
		n := cfg.Boss.SpreadCount
		for i := 0; i < n; i++ {
			offset := 0.0
			if n > 1 {
				offset = cfg.Boss.SpreadArc * (float64(i)/float64(n-1) - 0.5)
			}
			boss.Projectiles = append(boss.Projectiles, shot(cx, cy, aim+offset))
		}

	case PatternRing:
		n := cfg.Boss.RingCount
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			boss.Projectiles = append(boss.Projectiles, shot(cx, cy, angle))
		}

	case PatternBurst:
		// A line of aimed shots, the later ones starting further back.
		dx, dy := math.Cos(aim), math.Sin(aim)
		for i := 0; i < cfg.Boss.BurstCount; i++ {
			back := float64(i) * cfg.Boss.BurstSpacing
			boss.Projectiles = append(boss.Projectiles, shot(cx-dx*back, cy-dy*back, aim))
		}

	case PatternRain:
		n := cfg.Boss.RainCount
		for i := 0; i < n; i++ {
			x := tx + (float64(i)-float64(n-1)/2)*cfg.Boss.RainSpacing
			boss.Projectiles = append(boss.Projectiles, shot(x, cfg.Boss.RainHeight, math.Pi/2))
		}
	}
}

// updateBossProjectiles moves the boss's shots, applies hits to the player
// and compacts the list in place.
func updateBossProjectiles(ctx *tickContext, boss *components.BossData) {
	kept := boss.Projectiles[:0]
	for _, p := range boss.Projectiles {
		p.Step()
		if p.Expired() {
			continue
		}
		if p.Rect().Overlaps(ctx.playerRect()) {
			damagePlayer(ctx, p.Damage)
			continue
		}
		kept = append(kept, p)
	}
	boss.Projectiles = kept
}
