package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/gunner/components"
	cfg "github.com/automoto/gunner/config"
	"github.com/automoto/gunner/systems"
	"github.com/automoto/gunner/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs one play-through, from the start level until the player dies.
type WorldScene struct {
	ecs          *ecs.ECS
	shopUI       *ui.ShopUI
	sceneChanger SceneChanger
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{sceneChanger: sc}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.IsShopOpen(ws.ecs) && !systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.shopUI.UpdateUI()
		ws.shopUI.UI.Update()
	}

	if session := systems.GetSession(ws.ecs); session != nil && session.GameOver {
		ws.sceneChanger.ChangeScene(NewGameOverScene(ws.sceneChanger, components.GameOverData{
			FinalLevel: session.CurrentLevel,
			FinalScore: session.Score,
			FinalCoins: session.Coins,
		}))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)

	if systems.IsShopOpen(ws.ecs) && !systems.GetOrCreatePause(ws.ecs).IsPaused {
		ws.shopUI.UI.Draw(screen)
	}
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateDebug)

	e.AddSystem(systems.WithPauseCheck(systems.UpdateShop))

	// Simulation, in order. Frozen while paused, shopping or dead.
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevel))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateSweep))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateProgression))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateHUD))

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	ws.ecs = e

	systems.StartRun(ws.ecs, cfg.Debug.StartLevel, cfg.Debug.Seed)
	ws.shopUI = ui.NewShopUI(ws.ecs)
}
