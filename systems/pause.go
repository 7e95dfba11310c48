package systems

import (
	"os"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause overlay and drives its menu. It runs right
// after input so the toggle is seen the same tick.
func UpdatePause(e *ecs.ECS) {
	pause := GetOrCreatePause(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		pause.SelectedOption = components.MenuResume
		return
	}
	if !pause.IsPaused {
		return
	}

	sel := moveSelection(input, int(pause.SelectedOption), len(cfg.Pause.MenuOptions))
	pause.SelectedOption = components.PauseMenuOption(sel)

	if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return
	}
	switch pause.SelectedOption {
	case components.MenuResume:
		pause.IsPaused = false
	case components.MenuQuit:
		os.Exit(0)
	}
}

func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}
	w, h := screenSize(screen)
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.Pause.OverlayColor, false)

	options := cfg.Pause.MenuOptions
	listHeight := float64(len(options)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	drawMenuOptions(screen, options, int(pause.SelectedOption), (h-listHeight)/2,
		cfg.Pause.MenuItemHeight, cfg.Pause.MenuItemGap,
		cfg.Pause.TextColorNormal, cfg.Pause.TextColorSelected)

	hint := pauseHint(getOrCreateInput(e).LastInputMethod)
	drawCentered(screen, hint, fonts.Small, w, h-12, cfg.Pause.TextColorNormal)
}

func pauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Choose   Cross: Confirm   Options: Back to game"
	case components.InputXbox:
		return "D-Pad: Choose   A: Confirm   Start: Back to game"
	}
	return "Up/Down: Choose   Enter: Confirm   Esc: Back to game"
}

// WithPauseCheck skips system while the pause overlay is up.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreatePause(e).IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a simulation system: it is skipped while paused,
// while the shop is open and once the run is over.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if IsShopOpen(e) {
			return
		}
		if session := GetSession(e); session != nil && session.GameOver {
			return
		}
		system(e)
	})
}

func GetOrCreatePause(e *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
