package systems

import (
	"image/color"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collider overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}

// DrawDebug outlines every collision object in the space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		switch {
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{160, 160, 160, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnemy):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvCheckpoint):
			c = color.RGBA{255, 255, 0, 255}
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
