package scenes

import (
	"image/color"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/events"
	"github.com/automoto/skyward/systems"
	"github.com/automoto/skyward/systems/factory"
	"github.com/automoto/skyward/ui"
	"github.com/automoto/skyward/viewport"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AppScene is the whole application: one long-lived world whose mode decides
// which systems do work and which menu, if any, is shown on top.
type AppScene struct {
	ecs   *ecs.ECS
	menus *ui.MenuUI
	quit  bool

	reported viewport.Size
}

// NewAppScene creates the world with its process-wide singletons. window is
// the initial window size and best the best height restored from disk.
func NewAppScene(window viewport.Size, best float64) (*AppScene, error) {
	s := &AppScene{reported: window}

	world := donburi.NewWorld()
	s.ecs = ecs.NewECS(world)
	systems.SubscribeEvents(world)
	events.ModeChanged.Subscribe(world, s.onModeChanged)
	AddSystems(s.ecs)

	factory.CreateWindow(s.ecs, window)
	factory.CreateLifecycle(s.ecs, cfg.MainMenu)
	camera := factory.CreateCamera(s.ecs, window)
	factory.CreateBackground(s.ecs, components.Camera.Get(camera).Position, window)
	factory.CreateScore(s.ecs, best)

	menus, err := ui.NewMenuUI(ui.MenuActions{
		OnPlay:     func() { systems.RequestMode(world, cfg.Game) },
		OnQuit:     func() { s.quit = true },
		OnResume:   func() { systems.TogglePause(world) },
		OnRetry:    func() { systems.RequestCleanup(world, cfg.Game) },
		OnMainMenu: func() { systems.RequestCleanup(world, cfg.MainMenu) },
	})
	if err != nil {
		return nil, err
	}
	s.menus = menus

	if cfg.Debug.SkipMenu {
		systems.RequestMode(world, cfg.Game)
	}
	return s, nil
}

// AddSystems installs the fixed per-tick pipeline. The order is part of the
// contract: the player moves before the camera follows it, the background
// follows the camera, and cleanup runs after the camera reset.
func AddSystems(e *ecs.ECS) {
	// Queues and mode first, so every later system sees this tick's mode
	e.AddSystem(systems.UpdateWindow)
	e.AddSystem(systems.UpdateLifecycle)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateMenuKeys)
	e.AddSystem(systems.UpdateDebug)

	// Game systems wrapped with mode and pause checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePhysics))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlatforms))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCollisions))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))

	// Viewport runs in every mode; the rules depend on it
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateBackground)

	e.AddSystem(systems.WithGameplayChecks(systems.UpdateScore))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFallCheck))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateLevelGen))

	e.AddSystem(systems.WithMode(cfg.GameCleanup, systems.UpdateCleanup))

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawPlatforms)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
}

func (s *AppScene) Update() error {
	s.ecs.Update()
	if menu := s.activeMenu(); menu != nil {
		menu.Update()
	}
	if s.quit {
		return ebiten.Termination
	}
	return nil
}

func (s *AppScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	s.ecs.Draw(screen)
	if menu := s.activeMenu(); menu != nil {
		menu.Draw(screen)
	}
}

// ReportWindowSize queues a resize notification when the outside size
// changed. It is called from Layout, every frame.
func (s *AppScene) ReportWindowSize(width, height int) {
	if width <= 0 || height <= 0 {
		return // minimized
	}
	size := viewport.Size{Width: float64(width), Height: float64(height)}
	if size == s.reported {
		return
	}
	s.reported = size
	events.WindowResized.Publish(s.ecs.World, events.WindowResizedEvent{
		Width:  size.Width,
		Height: size.Height,
	})
}

// Progress returns what should be saved when the game exits.
func (s *AppScene) Progress() *systems.SavedProgress {
	return systems.CurrentProgress(s.ecs)
}

func (s *AppScene) activeMenu() *ebitenui.UI {
	mode, ok := systems.CurrentMode(s.ecs.World)
	if !ok {
		return nil
	}
	switch mode {
	case cfg.MainMenu:
		return s.menus.Main
	case cfg.Game:
		if systems.CurrentState(s.ecs.World) == cfg.Paused {
			return s.menus.Pause
		}
	case cfg.GameOver:
		return s.menus.GameOver
	}
	return nil
}

func (s *AppScene) onModeChanged(w donburi.World, ev events.ModeChangedEvent) {
	if ev.To != cfg.GameOver {
		return
	}
	if entry, ok := components.Score.First(w); ok {
		score := components.Score.Get(entry)
		s.menus.SetResult(score.Height, score.Best)
	}
}
