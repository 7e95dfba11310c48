package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID is a logical input, independent of the device that produced it.
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionShoot
	ActionSwitchWeapon
	ActionShop
	ActionUpgrade
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionDebug
	ActionCount // array size, keep last
)

// InputBinding lists the keys and standard-layout pad buttons that hold an
// action down. Any one of them is enough.
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

type InputConfig struct {
	Bindings map[ActionID]InputBinding

	// Left stick travel (0..1) before it counts as a direction.
	AnalogDeadzone float64
}

var Input InputConfig

func keys(k ...ebiten.Key) []ebiten.Key { return k }

func pad(b ...ebiten.StandardGamepadButton) []ebiten.StandardGamepadButton { return b }

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			// Gameplay
			ActionMoveLeft:     {keys(ebiten.KeyA, ebiten.KeyLeft), pad(ebiten.StandardGamepadButtonLeftLeft)},
			ActionMoveRight:    {keys(ebiten.KeyD, ebiten.KeyRight), pad(ebiten.StandardGamepadButtonLeftRight)},
			ActionJump:         {keys(ebiten.KeyW, ebiten.KeyUp), pad(ebiten.StandardGamepadButtonRightBottom)},
			ActionShoot:        {keys(ebiten.KeySpace), pad(ebiten.StandardGamepadButtonRightLeft, ebiten.StandardGamepadButtonFrontBottomRight)},
			ActionSwitchWeapon: {keys(ebiten.KeyQ), pad(ebiten.StandardGamepadButtonRightTop)},

			// Shop
			ActionShop:    {keys(ebiten.KeyE), pad(ebiten.StandardGamepadButtonCenterLeft)},
			ActionUpgrade: {keys(ebiten.KeyU), pad(ebiten.StandardGamepadButtonFrontTopRight)},

			// Menus
			ActionPause:      {keys(ebiten.KeyEscape, ebiten.KeyP), pad(ebiten.StandardGamepadButtonCenterRight)},
			ActionMenuUp:     {keys(ebiten.KeyUp, ebiten.KeyW), pad(ebiten.StandardGamepadButtonLeftTop)},
			ActionMenuDown:   {keys(ebiten.KeyDown, ebiten.KeyS), pad(ebiten.StandardGamepadButtonLeftBottom)},
			ActionMenuSelect: {keys(ebiten.KeyEnter), pad(ebiten.StandardGamepadButtonRightBottom)},
			ActionMenuBack:   {keys(ebiten.KeyBackspace), pad(ebiten.StandardGamepadButtonRightRight)},

			ActionDebug: {Keys: keys(ebiten.KeyF1)},
		},
	}
}
