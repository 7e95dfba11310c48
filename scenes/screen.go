package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gunner/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger is implemented by the game.
type SceneChanger = systems.SceneChanger

// screen is a scene whose world is built lazily on its first update.
type screen struct {
	ecs   *ecs.ECS
	once  sync.Once
	setup func(e *ecs.ECS)
}

func (s *screen) Update() {
	s.once.Do(func() {
		s.ecs = ecs.NewECS(donburi.NewWorld())
		s.setup(s.ecs)
	})
	s.ecs.Update()
}

func (s *screen) Draw(img *ebiten.Image) {
	// Clear first so the window background never shows through.
	img.Fill(color.Black)
	if s.ecs != nil {
		s.ecs.Draw(img)
	}
}
