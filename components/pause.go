package components

import "github.com/yohamta/donburi"

// PauseMenuOption indexes config.Pause.MenuOptions.
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuQuit
)

type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
