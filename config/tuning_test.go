package config

import (
	"os"
	"path/filepath"
	"testing"
)

// restoreTuning snapshots the globals Apply touches.
func restoreTuning(t *testing.T) {
	t.Helper()
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		types[k] = v
	}
	catalog := append([]WeaponSpec(nil), Weapon.Catalog...)
	boss := Boss
	t.Cleanup(func() {
		Enemy.Types = types
		Weapon.Catalog = catalog
		Boss = boss
	})
}

func TestDefaultStatsTable(t *testing.T) {
	tests := []struct {
		kind   string
		health int
		speed  float64
		damage int
		coins  int
		score  int
	}{
		{KindBasic, 30, 2, 10, 5, 100},
		{KindFlying, 20, 3, 5, 3, 150},
		{KindTank, 100, 1, 20, 10, 200},
		{KindBoss, 500, 1, 20, 50, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, ok := Enemy.Types[tt.kind]
			if !ok {
				t.Fatalf("missing stats for %s", tt.kind)
			}
			if s.Health != tt.health || s.Speed != tt.speed || s.Damage != tt.damage ||
				s.CoinValue != tt.coins || s.ScoreValue != tt.score {
				t.Errorf("stats for %s = %+v", tt.kind, s)
			}
		})
	}
}

func TestLoadTuningAppliesOverrides(t *testing.T) {
	restoreTuning(t)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte(`
enemies:
  basic:
    health: 45
    coins: 7
weapons:
  - name: rifle
    damage: 12
    color: "#102030"
  - name: Laser
    damage: 40
    cooldown: 8
boss:
  phase_cadence: [100, 80, 40]
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	tuning.Apply()

	basic := Enemy.Types[KindBasic]
	if basic.Health != 45 || basic.CoinValue != 7 {
		t.Errorf("basic = %+v, want health 45 coins 7", basic)
	}
	if basic.Speed != 2 {
		t.Errorf("untouched speed changed to %v", basic.Speed)
	}

	rifle := Weapon.Catalog[catalogIndex("Rifle")]
	if rifle.Damage != 12 {
		t.Errorf("rifle damage = %d, want 12", rifle.Damage)
	}
	if rifle.BulletColor.R != 0x10 || rifle.BulletColor.G != 0x20 || rifle.BulletColor.B != 0x30 || rifle.BulletColor.A != 255 {
		t.Errorf("rifle color = %+v", rifle.BulletColor)
	}

	idx := catalogIndex("Laser")
	if idx < 0 {
		t.Fatal("expected Laser to be appended to the catalog")
	}
	if l := Weapon.Catalog[idx]; l.Damage != 40 || l.Cooldown != 8 {
		t.Errorf("laser = %+v", l)
	}

	if Boss.PhaseCadence != [3]int{100, 80, 40} {
		t.Errorf("boss cadence = %v", Boss.PhaseCadence)
	}
}

func TestParseTuningRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown kind", "enemies:\n  dragon:\n    health: 5\n"},
		{"zero health", "enemies:\n  basic:\n    health: 0\n"},
		{"nameless weapon", "weapons:\n  - damage: 3\n"},
		{"short cadence", "boss:\n  phase_cadence: [1, 2]\n"},
		{"bad color", "weapons:\n  - name: Pistol\n    color: \"#12\"\n"},
		{"not yaml", "enemies: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseTuning([]byte(tt.yaml)); err == nil {
				t.Errorf("expected error for %q", tt.yaml)
			}
		})
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if _, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
