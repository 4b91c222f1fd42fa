package main

import (
	"flag"
	"log"

	"github.com/automoto/skyward/config"
	"github.com/automoto/skyward/fonts"
	"github.com/automoto/skyward/scenes"
	"github.com/automoto/skyward/systems"
	"github.com/automoto/skyward/viewport"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
	ReportWindowSize(width, height int)
}

type Game struct {
	scene   Scene
	watcher *config.Watcher
}

func NewGame(window viewport.Size, best float64, watcher *config.Watcher) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleSize); err != nil {
		return nil, err
	}

	scene, err := scenes.NewAppScene(window, best)
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene, watcher: watcher}, nil
}

func (g *Game) Update() error {
	g.reloadTuning()
	return g.scene.Update()
}

// reloadTuning re-applies the tuning file on the game goroutine after an edit.
// Changes that affect spawning take effect from the next session.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	changed, err := g.watcher.Poll()
	if err != nil {
		log.Printf("Warning: tuning watcher: %v", err)
	}
	if !changed {
		return
	}
	if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
		log.Printf("Warning: Could not reload tuning: %v", err)
		return
	}
	log.Printf("Reloaded tuning from %s", config.Debug.TuningPath)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps one logical pixel per outside pixel, so a resize changes the
// visible area and is reported to the viewport.
func (g *Game) Layout(width, height int) (int, int) {
	g.scene.ReportWindowSize(width, height)
	return width, height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a run immediately")
	flag.StringVar(&config.Debug.TuningPath, "config", "", "YAML tuning file applied over the defaults")
	flag.BoolVar(&config.Debug.WatchTuning, "watch", false, "re-apply the tuning file when it changes")
	flag.Parse()

	if err := config.ApplyDefaultTuning(); err != nil {
		log.Fatalf("Failed to apply default tuning: %v", err)
	}
	if config.Debug.TuningPath != "" {
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	var watcher *config.Watcher
	if config.Debug.WatchTuning && config.Debug.TuningPath != "" {
		w, err := config.NewWatcher(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	// Initialize persistence and load saved progress
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	window := viewport.Size{Width: float64(config.C.Width), Height: float64(config.C.Height)}
	var best float64
	if saved, err := systems.LoadProgress(); err == nil && saved != nil {
		if saved.WindowWidth > 0 && saved.WindowHeight > 0 {
			window = viewport.Size{Width: float64(saved.WindowWidth), Height: float64(saved.WindowHeight)}
		}
		best = saved.BestHeight
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(int(window.Width), int(window.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame(window, best, watcher)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	if app, ok := game.scene.(*scenes.AppScene); ok {
		_ = systems.SaveProgress(app.Progress())
	}
}
