package components

import (
	"image/color"

	cfg "github.com/automoto/gunner/config"
)

// Weapon is an owned or purchasable weapon. Owned weapons are values in
// PlayerData.Weapons and are upgraded in place.
type Weapon struct {
	Name         string
	Damage       int
	Speed        float64
	Cooldown     int
	BulletSize   float64
	BulletColor  color.RGBA
	UpgradeLevel int
	Price        int
}

// NewWeapon builds a level 1 weapon from a catalog entry.
func NewWeapon(spec cfg.WeaponSpec) Weapon {
	size := spec.BulletSize
	if size <= 0 {
		size = cfg.Projectile.DefaultSize
	}
	c := spec.BulletColor
	if c.A == 0 {
		c = cfg.Projectile.DefaultColor
	}
	w := Weapon{
		Name:         spec.Name,
		Damage:       spec.Damage,
		Speed:        spec.Speed,
		Cooldown:     spec.Cooldown,
		BulletSize:   size,
		BulletColor:  c,
		UpgradeLevel: 1,
	}
	w.Price = priceFor(w.UpgradeLevel)
	return w
}

// Upgrade raises the weapon one level: more damage, a shorter cooldown
// down to the configured floor, and a new price.
func (w *Weapon) Upgrade() {
	w.UpgradeLevel++
	w.Damage += cfg.Weapon.UpgradeDamage
	w.Cooldown -= cfg.Weapon.UpgradeCooldown
	if w.Cooldown < cfg.Weapon.MinCooldown {
		w.Cooldown = cfg.Weapon.MinCooldown
	}
	w.Price = priceFor(w.UpgradeLevel)
}

func priceFor(level int) int {
	return cfg.Weapon.PricePerLevel * level
}
