package components

import (
	"github.com/automoto/gunner/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Key    string // requested key, e.g. "level_2" or "boss_1"
	Layout string // layout actually loaded; differs from Key on fallback
	Width  float64
	Height float64

	// Extra enemies the layout places on top of the standard wave.
	EnemySpawns []assets.EnemySpawn
}

var Level = donburi.NewComponentType[LevelData]()
