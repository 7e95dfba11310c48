package components

import (
	"testing"

	cfg "github.com/automoto/gunner/config"
)

func TestNewWeaponFromCatalog(t *testing.T) {
	w := NewWeapon(cfg.Weapon.Catalog[0])
	if w.Name != "Pistol" || w.Damage != 10 || w.Cooldown != 20 || w.Speed != 10 {
		t.Errorf("pistol = %+v", w)
	}
	if w.UpgradeLevel != 1 || w.Price != 100 {
		t.Errorf("level %d price %d, want 1 and 100", w.UpgradeLevel, w.Price)
	}
	if w.BulletSize != cfg.Projectile.DefaultSize || w.BulletColor != cfg.Projectile.DefaultColor {
		t.Errorf("pistol bullet = %v %v", w.BulletSize, w.BulletColor)
	}
}

func TestWeaponUpgradeIsMonotonic(t *testing.T) {
	for _, spec := range cfg.Weapon.Catalog {
		t.Run(spec.Name, func(t *testing.T) {
			w := NewWeapon(spec)
			for i := 0; i < 20; i++ {
				before := w
				w.Upgrade()
				if w.Damage != before.Damage+5 {
					t.Fatalf("upgrade %d: damage %d -> %d", i, before.Damage, w.Damage)
				}
				wantCooldown := before.Cooldown - 2
				if wantCooldown < 5 {
					wantCooldown = 5
				}
				if w.Cooldown != wantCooldown {
					t.Fatalf("upgrade %d: cooldown %d -> %d, want %d", i, before.Cooldown, w.Cooldown, wantCooldown)
				}
				if w.UpgradeLevel != before.UpgradeLevel+1 {
					t.Fatalf("upgrade %d: level %d -> %d", i, before.UpgradeLevel, w.UpgradeLevel)
				}
				if w.Price != 100*w.UpgradeLevel {
					t.Fatalf("upgrade %d: price %d, want %d", i, w.Price, 100*w.UpgradeLevel)
				}
			}
		})
	}
}

func TestCurrentWeapon(t *testing.T) {
	p := PlayerData{}
	if p.CurrentWeapon() != nil {
		t.Fatal("expected nil weapon with an empty arsenal")
	}
	p.Weapons = []Weapon{NewWeapon(cfg.Weapon.Catalog[0]), NewWeapon(cfg.Weapon.Catalog[2])}
	p.Equipped = 1
	if w := p.CurrentWeapon(); w == nil || w.Name != "Rifle" {
		t.Fatalf("CurrentWeapon = %+v", w)
	}
	p.CurrentWeapon().Upgrade()
	if p.Weapons[1].UpgradeLevel != 2 {
		t.Error("CurrentWeapon should point into the owned list")
	}
}
