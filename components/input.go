package components

import (
	cfg "github.com/automoto/gunner/config"
	"github.com/yohamta/donburi"
)

// InputMethod selects which button names the hints show.
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState is one action's level and edges for the current tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// InputData keeps two consecutive samples of every action. Edges are
// derived from the pair rather than stored.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
