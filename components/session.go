package components

import "github.com/yohamta/donburi"

// SessionData is the run-wide state every system reads and writes through
// the tick context.
type SessionData struct {
	CurrentLevel int
	Coins        int
	Score        int

	// Respawn point. Only moves when a checkpoint is newly activated.
	CheckpointX float64
	CheckpointY float64

	// Boss is nil when no boss is alive on the current level.
	Boss *donburi.Entry

	GameOver bool
}

var Session = donburi.NewComponentType[SessionData]()
