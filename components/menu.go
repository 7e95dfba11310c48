package components

import "github.com/yohamta/donburi"

// MainMenuOption indexes config.Menu.MenuOptions.
type MainMenuOption int

const (
	MainMenuStart MainMenuOption = iota
	MainMenuExit
)

type MenuData struct {
	SelectedIndex int
}

var Menu = donburi.NewComponentType[MenuData]()
