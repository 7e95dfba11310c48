package components

import "testing"

func TestProjectileLifetimeDecreases(t *testing.T) {
	p := ProjectileData{X: 10, Y: 20, VelX: 3, VelY: -1, Lifetime: 3}
	last := p.Lifetime
	for !p.Expired() {
		p.Step()
		if p.Lifetime >= last {
			t.Fatalf("lifetime did not decrease: %d -> %d", last, p.Lifetime)
		}
		last = p.Lifetime
	}
	if p.X != 19 || p.Y != 17 {
		t.Errorf("position = (%v, %v), want (19, 17)", p.X, p.Y)
	}
}

func TestCheckpointLatch(t *testing.T) {
	var c CheckpointData
	if !c.Activate() {
		t.Fatal("first activation should report true")
	}
	if c.Activate() {
		t.Fatal("second activation should report false")
	}
	if !c.Active {
		t.Fatal("checkpoint should stay active")
	}
}

func TestParseEnemyKind(t *testing.T) {
	for _, k := range []EnemyKind{EnemyBasic, EnemyFlying, EnemyTank, EnemyBoss} {
		got, ok := ParseEnemyKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseEnemyKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseEnemyKind("dragon"); ok {
		t.Error("unknown kind should not parse")
	}
}
