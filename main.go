package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/gunner/config"
	"github.com/automoto/gunner/fonts"
	"github.com/automoto/gunner/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.TuningWatcher
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.reloadTuning()
	g.scene.Update()
	return nil
}

// reloadTuning applies pending tuning file changes. It runs on the game
// loop so the simulation never sees a half-applied file.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path := <-g.watcher.Events:
			if err := applyTuning(path); err != nil {
				log.Printf("Warning: tuning reload failed: %v", err)
				continue
			}
			log.Printf("Reloaded tuning from %s", path)
		case err := <-g.watcher.Errors:
			log.Printf("Warning: tuning watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func applyTuning(path string) error {
	t, err := config.LoadTuning(path)
	if err != nil {
		return err
	}
	t.Apply()
	return nil
}

func main() {
	level := flag.Int("level", 1, "Level number to start on")
	skipMenu := flag.Bool("skip-menu", false, "Skip the main menu")
	tuning := flag.String("tuning", "", "YAML file overriding enemy stats and weapons")
	watch := flag.Bool("watch", false, "Reload the tuning file when it changes")
	seed := flag.Int64("seed", 0, "Random seed (0 = from the clock)")
	debug := flag.Bool("debug", false, "Outline collision boxes (toggle in game with F1)")
	flag.Parse()

	if *level < 1 {
		log.Fatalf("-level must be at least 1, got %d", *level)
	}

	config.Debug.StartLevel = *level
	config.Debug.SkipMenu = *skipMenu
	config.Debug.TuningFile = *tuning
	config.Debug.WatchTuning = *watch
	config.Debug.Seed = *seed
	config.Debug.ShowColliders = *debug

	if config.Debug.TuningFile != "" {
		if err := applyTuning(config.Debug.TuningFile); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Gunner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := NewGame()

	if config.Debug.WatchTuning && config.Debug.TuningFile != "" {
		w, err := config.WatchTuning(config.Debug.TuningFile)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			game.watcher = w
			defer w.Close()
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
