package systems

import (
	"strings"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	connectedPads []ebiten.GamepadID
	padKinds      = map[ebiten.GamepadID]components.InputMethod{}
)

// UpdateInput samples every bound key and pad button into the Input
// singleton. Runs first, paused or not.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	connectedPads = ebiten.AppendGamepadIDs(connectedPads[:0])

	usedKeyboard := pollKeyboard(&input.Current)
	pad, usedPad := pollGamepads(&input.Current, connectedPads)
	if stickPad, moved := pollStick(&input.Current, connectedPads); moved {
		pad, usedPad = stickPad, true
	}

	switch {
	case usedPad:
		input.LastInputMethod = padKind(pad)
	case usedKeyboard:
		input.LastInputMethod = components.InputKeyboard
	}
}

func pollKeyboard(actions *[cfg.ActionCount]bool) bool {
	used := false
	for id, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				actions[id] = true
				used = true
			}
		}
	}
	return used
}

// pollGamepads reports the last pad that pressed a bound button.
func pollGamepads(actions *[cfg.ActionCount]bool, pads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	var last ebiten.GamepadID
	used := false
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for action, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					actions[action] = true
					last, used = id, true
				}
			}
		}
	}
	return last, used
}

// pollStick maps the left stick onto movement and menu navigation.
func pollStick(actions *[cfg.ActionCount]bool, pads []ebiten.GamepadID) (ebiten.GamepadID, bool) {
	dz := cfg.Input.AnalogDeadzone
	var last ebiten.GamepadID
	moved := false
	for _, id := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)

		dirs := []struct {
			on     bool
			action cfg.ActionID
		}{
			{h < -dz, cfg.ActionMoveLeft},
			{h > dz, cfg.ActionMoveRight},
			{v < -dz, cfg.ActionMenuUp},
			{v > dz, cfg.ActionMenuDown},
		}
		for _, d := range dirs {
			if d.on {
				actions[d.action] = true
				last, moved = id, true
			}
		}
	}
	return last, moved
}

// padKind guesses the button glyph family from the pad's name.
func padKind(id ebiten.GamepadID) components.InputMethod {
	if kind, ok := padKinds[id]; ok {
		return kind
	}
	kind := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(id))
	for _, hint := range []string{"playstation", "dualshock", "dualsense", "ps4", "ps5"} {
		if strings.Contains(name, hint) {
			kind = components.InputPlayStation
			break
		}
	}
	padKinds[id] = kind
	return kind
}

func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction derives the edge state of id from the last two samples.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	now, before := input.Current[id], input.Previous[id]
	return components.ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: before && !now,
	}
}
