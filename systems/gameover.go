package systems

import (
	"fmt"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver returns the game-over screen system. Retry starts a new
// run, Main Menu goes back to the title.
func NewUpdateGameOver(sc SceneChanger, newWorld, newMenu func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		over := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		sel := moveSelection(input, int(over.SelectedOption), len(cfg.GameOver.MenuOptions))
		over.SelectedOption = components.GameOverOption(sel)

		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		if over.SelectedOption == components.GameOverRetry {
			sc.ChangeScene(newWorld())
			return
		}
		sc.ChangeScene(newMenu())
	}
}

func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	over := GetOrCreateGameOver(e)
	w, _ := screenSize(screen)
	screen.Fill(cfg.GameOver.BackgroundColor)

	drawCentered(screen, "GAME OVER", fonts.Title, w, cfg.GameOver.TitleY, cfg.GameOver.TitleColor)

	summary := fmt.Sprintf("Reached level %d   Score %d   Coins %d", over.FinalLevel, over.FinalScore, over.FinalCoins)
	drawCentered(screen, summary, fonts.Regular, w, cfg.GameOver.TitleY+60, cfg.GameOver.TextColorNormal)

	drawMenuOptions(screen, cfg.GameOver.MenuOptions, int(over.SelectedOption), cfg.GameOver.MenuStartY,
		cfg.GameOver.MenuItemHeight, cfg.GameOver.MenuItemGap,
		cfg.GameOver.TextColorNormal, cfg.GameOver.TextColorSelected)
}

// GetOrCreateGameOver returns the singleton that holds the finished run's
// totals and the menu cursor.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.GameOver))
	}
	return components.GameOver.Get(entry)
}
