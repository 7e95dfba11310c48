package scenes

import (
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene is the title screen.
type MenuScene struct {
	screen
}

func NewMenuScene(sc SceneChanger) *MenuScene {
	ms := &MenuScene{}
	ms.setup = func(e *ecs.ECS) {
		newWorld := func() interface{} { return NewWorldScene(sc) }

		e.AddSystem(systems.UpdateInput)
		e.AddSystem(systems.NewUpdateMenu(sc, newWorld))
		e.AddRenderer(cfg.Default, systems.DrawMenu)
	}
	return ms
}
