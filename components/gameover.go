package components

import "github.com/yohamta/donburi"

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the game over menu selection and the run it summarises.
type GameOverData struct {
	SelectedOption GameOverOption
	FinalLevel     int
	FinalScore     int
	FinalCoins     int
}

// GameOver is the component type for game over menu state
var GameOver = donburi.NewComponentType[GameOverData]()
