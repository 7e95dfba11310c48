package systems

import (
	"testing"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
)

func TestBossPhase(t *testing.T) {
	tests := []struct {
		current, max int
		want         int
	}{
		{500, 500, 1},
		{300, 500, 1},
		{299, 500, 2},
		{150, 500, 2},
		{149, 500, 3},
		{140, 500, 3},
		{0, 500, 3},
		// Health going back up drops the phase again.
		{450, 500, 1},
	}
	for _, tt := range tests {
		if got := BossPhase(tt.current, tt.max); got != tt.want {
			t.Errorf("BossPhase(%d, %d) = %d, want %d", tt.current, tt.max, got, tt.want)
		}
	}
}

func TestBossEntersPhaseThreeAt28Percent(t *testing.T) {
	e := newTestRun(t, 3)
	ctx := mustContext(t, e)
	boss := ctx.session.Boss
	if boss == nil {
		t.Fatal("level 3 has no boss")
	}

	health := components.Health.Get(boss)
	if health.Current != 500 || health.Max != 500 {
		t.Fatalf("boss health = %d/%d, want 500/500", health.Current, health.Max)
	}
	updateBoss(ctx, boss, components.Enemy.Get(boss))
	if phase := components.Boss.Get(boss).Phase; phase != 1 {
		t.Fatalf("phase = %d, want 1", phase)
	}

	DamageEnemy(boss, 360)
	if health.Current != 140 {
		t.Fatalf("health = %d, want 140", health.Current)
	}
	updateBoss(ctx, boss, components.Enemy.Get(boss))
	if phase := components.Boss.Get(boss).Phase; phase != 3 {
		t.Errorf("phase = %d, want 3", phase)
	}
}

func TestBossAttackCadence(t *testing.T) {
	e := newTestRun(t, 3)
	ctx := mustContext(t, e)
	entry := ctx.session.Boss
	boss := components.Boss.Get(entry)
	enemy := components.Enemy.Get(entry)

	t.Run("phase 1 fires the heavy shot", func(t *testing.T) {
		boss.PatternTimer = 0
		boss.Projectiles = nil
		updateBoss(ctx, entry, enemy)

		if boss.Pattern != PatternHeavy {
			t.Errorf("pattern = %d, want heavy", boss.Pattern)
		}
		if len(boss.Projectiles) != 1 {
			t.Fatalf("projectiles = %d, want 1", len(boss.Projectiles))
		}
		if p := boss.Projectiles[0]; p.Damage != cfg.Boss.HeavyDamage {
			t.Errorf("damage = %d, want %d", p.Damage, cfg.Boss.HeavyDamage)
		}
		if boss.PatternTimer != 120 {
			t.Errorf("timer = %d, want 120", boss.PatternTimer)
		}

		updateBoss(ctx, entry, enemy)
		if boss.PatternTimer != 119 {
			t.Errorf("timer after one tick = %d, want 119", boss.PatternTimer)
		}
	})

	t.Run("phase 2 rotates to the spread", func(t *testing.T) {
		components.Health.Get(entry).Current = 299
		boss.Pattern = PatternHeavy
		boss.PatternTimer = 0
		boss.Projectiles = nil
		updateBoss(ctx, entry, enemy)

		if boss.Pattern != PatternSpread {
			t.Errorf("pattern = %d, want spread", boss.Pattern)
		}
		if len(boss.Projectiles) != cfg.Boss.SpreadCount {
			t.Errorf("projectiles = %d, want %d", len(boss.Projectiles), cfg.Boss.SpreadCount)
		}
		if boss.PatternTimer != 90 {
			t.Errorf("timer = %d, want 90", boss.PatternTimer)
		}
	})

	t.Run("phase 3 draws from every pattern", func(t *testing.T) {
		components.Health.Get(entry).Current = 100
		for i := 0; i < 50; i++ {
			boss.PatternTimer = 0
			boss.Projectiles = nil
			updateBoss(ctx, entry, enemy)
			if boss.Pattern < 0 || boss.Pattern >= cfg.Boss.TotalPatterns {
				t.Fatalf("pattern = %d out of range", boss.Pattern)
			}
			if boss.PatternTimer != 60 {
				t.Fatalf("timer = %d, want 60", boss.PatternTimer)
			}
		}
	})
}

func TestBossPatternsSpawnIntoOwnList(t *testing.T) {
	e := newTestRun(t, 3)
	ctx := mustContext(t, e)
	entry := ctx.session.Boss
	boss := components.Boss.Get(entry)

	want := map[int]int{
		PatternHeavy:  1,
		PatternSpread: cfg.Boss.SpreadCount,
		PatternRing:   cfg.Boss.RingCount,
		PatternBurst:  cfg.Boss.BurstCount,
		PatternRain:   cfg.Boss.RainCount,
	}
	for pattern, n := range want {
		boss.Pattern = pattern
		boss.Projectiles = nil
		performAttack(ctx, entry, boss)
		if len(boss.Projectiles) != n {
			t.Errorf("pattern %d spawned %d, want %d", pattern, len(boss.Projectiles), n)
		}
	}

	before := len(entries(e, components.Projectile))
	if before != 0 {
		t.Errorf("boss shots leaked into the world: %d", before)
	}
}

func TestBossProjectilesHitAndExpire(t *testing.T) {
	e := newTestRun(t, 3)
	ctx := mustContext(t, e)
	boss := components.Boss.Get(ctx.session.Boss)
	pr := ctx.playerRect()

	boss.Projectiles = []components.ProjectileData{
		// Sitting on the player.
		{X: pr.X + pr.W/2, Y: pr.Y + pr.H/2, Damage: 10, Size: 8, Lifetime: 100},
		// Far away and about to expire.
		{X: 1200, Y: 20, Damage: 10, Size: 8, Lifetime: 1},
		// Far away with time left.
		{X: 1200, Y: 100, Damage: 10, Size: 8, Lifetime: 100},
	}
	updateBossProjectiles(ctx, boss)

	if hp := components.Health.Get(ctx.player).Current; hp != 90 {
		t.Errorf("player health = %d, want 90", hp)
	}
	if len(boss.Projectiles) != 1 {
		t.Fatalf("projectiles left = %d, want 1", len(boss.Projectiles))
	}
	if boss.Projectiles[0].Lifetime != 99 {
		t.Errorf("lifetime = %d, want 99", boss.Projectiles[0].Lifetime)
	}
}
