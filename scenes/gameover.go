package scenes

import (
	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows the totals of a finished run.
type GameOverScene struct {
	screen
}

func NewGameOverScene(sc SceneChanger, summary components.GameOverData) *GameOverScene {
	gs := &GameOverScene{}
	gs.setup = func(e *ecs.ECS) {
		*systems.GetOrCreateGameOver(e) = summary

		newWorld := func() interface{} { return NewWorldScene(sc) }
		newMenu := func() interface{} { return NewMenuScene(sc) }

		e.AddSystem(systems.UpdateInput)
		e.AddSystem(systems.NewUpdateGameOver(sc, newWorld, newMenu))
		e.AddRenderer(cfg.Default, systems.DrawGameOver)
	}
	return gs
}
