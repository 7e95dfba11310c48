package systems

import (
	"image/color"
	"os"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game; systems use it to leave their
// scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// moveSelection applies MenuUp/MenuDown to a wrapping cursor over n rows.
func moveSelection(input *components.InputData, current, n int) int {
	if n <= 0 {
		return 0
	}
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		current--
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		current++
	}
	return (current%n + n) % n
}

// NewUpdateMenu returns the title screen system. Start builds a new world
// scene through newWorld.
func NewUpdateMenu(sc SceneChanger, newWorld func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		menu.SelectedIndex = moveSelection(input, menu.SelectedIndex, len(cfg.Menu.MenuOptions))

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		switch components.MainMenuOption(menu.SelectedIndex) {
		case components.MainMenuStart:
			sc.ChangeScene(newWorld())
		case components.MainMenuExit:
			os.Exit(0)
		}
	}
}

func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	w, h := screenSize(screen)
	screen.Fill(cfg.Menu.BackgroundColor)

	drawCentered(screen, cfg.Menu.Title, fonts.Title, w, cfg.Menu.TitleY, cfg.Menu.TitleColor)
	drawMenuOptions(screen, cfg.Menu.MenuOptions, menu.SelectedIndex, cfg.Menu.MenuStartY,
		cfg.Menu.MenuItemHeight, cfg.Menu.MenuItemGap,
		cfg.Menu.TextColorNormal, cfg.Menu.TextColorSelected)

	hint := menuHint(getOrCreateInput(e).LastInputMethod)
	drawCentered(screen, hint, fonts.Small, w, h-12, cfg.Menu.TextColorNormal)
}

func menuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Choose   Cross: Confirm"
	case components.InputXbox:
		return "D-Pad: Choose   A: Confirm"
	}
	return "Up/Down: Choose   Enter: Confirm   A/D Move   W Jump   Space Shoot   E Shop"
}

func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

func screenSize(screen *ebiten.Image) (float64, float64) {
	b := screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width, y float64, clr color.Color) {
	face := name.Get()
	text.Draw(screen, s, face, centerTextX(s, face, width), int(y), clr)
}
