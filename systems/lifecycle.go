package systems

import (
	"errors"
	"log"
	"time"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/events"
	"github.com/automoto/skyward/lifecycle"
	"github.com/automoto/skyward/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubscribeEvents registers the queue consumers on a world. Call it once,
// right after the world is created.
func SubscribeEvents(w donburi.World) {
	events.WindowResized.Subscribe(w, onWindowResized)
	events.ModeRequested.Subscribe(w, onModeRequested)
	events.CleanupRequested.Subscribe(w, onCleanupRequested)
	events.PauseToggled.Subscribe(w, onPauseToggled)
}

// UpdateLifecycle is the mode dispatcher. It drains the requests published
// since the last tick, applies at most one mode change and then runs the
// entry action of the new mode. Must run right after UpdateWindow, before
// anything reads the mode.
func UpdateLifecycle(ecs *ecs.ECS) {
	entry, ok := components.Lifecycle.First(ecs.World)
	if !ok {
		return
	}
	lc := components.Lifecycle.Get(entry)
	lc.Entered = false

	events.ModeRequested.ProcessEvents(ecs.World)
	events.CleanupRequested.ProcessEvents(ecs.World)
	events.PauseToggled.ProcessEvents(ecs.World)

	if t, ok := lc.Machine.Apply(); ok {
		lc.Entered = true
		enterMode(ecs, t)
		events.ModeChanged.Publish(ecs.World, events.ModeChangedEvent{From: t.From, To: t.To})
		events.ModeChanged.ProcessEvents(ecs.World)
	}

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		components.Camera.Get(cameraEntry).Frozen = lc.Machine.State() == cfg.Paused
	}
}

func enterMode(ecs *ecs.ECS, t lifecycle.Transition) {
	switch t.To {
	case cfg.Game:
		window := windowSize(ecs.World)
		if window == nil {
			log.Printf("Warning: entering Game without a window size, using %dx%d", cfg.C.Width, cfg.C.Height)
			window = defaultWindowSize()
		}
		factory.StartSession(ecs, *window, time.Now().UnixNano())
	case cfg.GameOver:
		saveScore(ecs)
	}
}

// CurrentMode returns the application mode, or false before the lifecycle
// singleton exists.
func CurrentMode(w donburi.World) (cfg.AppMode, bool) {
	entry, ok := components.Lifecycle.First(w)
	if !ok {
		return 0, false
	}
	return components.Lifecycle.Get(entry).Machine.Mode(), true
}

// CurrentState returns the Game sub-state. It is Running outside Game.
func CurrentState(w donburi.World) cfg.GameState {
	entry, ok := components.Lifecycle.First(w)
	if !ok {
		return cfg.Running
	}
	return components.Lifecycle.Get(entry).Machine.State()
}

// RequestMode queues a plain mode change for the next tick.
func RequestMode(w donburi.World, next cfg.AppMode) {
	events.ModeRequested.Publish(w, events.ModeRequestedEvent{Next: next})
}

// RequestCleanup queues a session teardown followed by next.
func RequestCleanup(w donburi.World, next cfg.AppMode) {
	events.CleanupRequested.Publish(w, events.CleanupRequestedEvent{Next: next})
}

// TogglePause queues a Running/Paused flip for the next tick.
func TogglePause(w donburi.World) {
	events.PauseToggled.Publish(w, events.PauseToggledEvent{})
}

func onModeRequested(w donburi.World, ev events.ModeRequestedEvent) {
	if m := machine(w); m != nil {
		logRequestError(m.Request(ev.Next))
	}
}

func onCleanupRequested(w donburi.World, ev events.CleanupRequestedEvent) {
	if m := machine(w); m != nil {
		logRequestError(m.RequestCleanup(ev.Next))
	}
}

func onPauseToggled(w donburi.World, _ events.PauseToggledEvent) {
	if m := machine(w); m != nil {
		if _, err := m.TogglePause(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

func machine(w donburi.World) *lifecycle.Machine {
	entry, ok := components.Lifecycle.First(w)
	if !ok {
		return nil
	}
	return components.Lifecycle.Get(entry).Machine
}

// Identical requests in one tick are coalesced by the machine and never get
// here. The first request of the tick wins; later conflicting ones are dropped.
func logRequestError(err error) {
	switch {
	case err == nil:
	case errors.Is(err, lifecycle.ErrRequestPending):
		log.Printf("Warning: dropped mode request: %v", err)
	default:
		log.Printf("Warning: ignored mode request: %v", err)
	}
}
