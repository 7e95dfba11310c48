package components

import (
	cfg "github.com/automoto/gunner/config"
	"github.com/yohamta/donburi"
)

// EnemyKind selects the behaviour function an enemy runs each tick.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFlying
	EnemyTank
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return cfg.KindBasic
	case EnemyFlying:
		return cfg.KindFlying
	case EnemyTank:
		return cfg.KindTank
	case EnemyBoss:
		return cfg.KindBoss
	}
	return "unknown"
}

// ParseEnemyKind maps a stats-table key to a kind.
func ParseEnemyKind(s string) (EnemyKind, bool) {
	switch s {
	case cfg.KindBasic:
		return EnemyBasic, true
	case cfg.KindFlying:
		return EnemyFlying, true
	case cfg.KindTank:
		return EnemyTank, true
	case cfg.KindBoss:
		return EnemyBoss, true
	}
	return EnemyBasic, false
}

// EnemyData is the record shared by every enemy kind. Stats is a copy
// taken at spawn time.
type EnemyData struct {
	Kind            EnemyKind
	Stats           cfg.EnemyTypeConfig
	Direction       float64
	TurnTimer       int
	ContactCooldown int
}

var Enemy = donburi.NewComponentType[EnemyData]()
