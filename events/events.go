// Package events declares the queued messages that cross system boundaries.
// Publishers never mutate the state they are asking to change; the owning
// system drains its queue exactly once per tick.
package events

import (
	cfg "github.com/automoto/skyward/config"
	devents "github.com/yohamta/donburi/features/events"
)

// WindowResizedEvent is published by the windowing layer when the outside
// size changes. Drained by systems.UpdateWindow.
type WindowResizedEvent struct {
	Width  float64
	Height float64
}

// ModeRequestedEvent asks the lifecycle dispatcher for a plain mode change.
type ModeRequestedEvent struct {
	Next cfg.AppMode
}

// CleanupRequestedEvent asks the dispatcher to tear the session down and
// then enter Next.
type CleanupRequestedEvent struct {
	Next cfg.AppMode
}

// ModeChangedEvent is published by the dispatcher after a change is applied.
type ModeChangedEvent struct {
	From cfg.AppMode
	To   cfg.AppMode
}

// PauseToggledEvent asks the dispatcher to flip Running/Paused.
type PauseToggledEvent struct{}

var (
	WindowResized    = devents.NewEventType[WindowResizedEvent]()
	ModeRequested    = devents.NewEventType[ModeRequestedEvent]()
	CleanupRequested = devents.NewEventType[CleanupRequestedEvent]()
	ModeChanged      = devents.NewEventType[ModeChangedEvent]()
	PauseToggled     = devents.NewEventType[PauseToggledEvent]()
)
