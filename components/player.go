package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Facing          float64 // cfg.DirectionLeft or cfg.DirectionRight
	DoubleJumpReady bool
	ShootCooldown   int
	Weapons         []Weapon
	Equipped        int
}

// CurrentWeapon returns the equipped weapon, or nil when none is owned.
func (p *PlayerData) CurrentWeapon() *Weapon {
	if p.Equipped < 0 || p.Equipped >= len(p.Weapons) {
		return nil
	}
	return &p.Weapons[p.Equipped]
}

var Player = donburi.NewComponentType[PlayerData]()
