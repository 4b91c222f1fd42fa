package systems

import (
	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/events"
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWindow drains the resize queue into the Window singleton. Resized is
// one-shot: it is true only for the tick that drained at least one
// notification, and the size is the last one queued.
// Must run first in the system order.
func UpdateWindow(ecs *ecs.ECS) {
	if entry, ok := components.Window.First(ecs.World); ok {
		window := components.Window.Get(entry)
		window.Resized = false
		window.Drained = 0
	}
	events.WindowResized.ProcessEvents(ecs.World)
}

func onWindowResized(w donburi.World, ev events.WindowResizedEvent) {
	entry, ok := components.Window.First(w)
	if !ok {
		return
	}
	window := components.Window.Get(entry)
	window.Size = viewport.Size{Width: ev.Width, Height: ev.Height}
	window.Known = true
	window.Resized = true
	window.Drained++
}

// windowSize returns the current window size, or nil until one is known.
func windowSize(w donburi.World) *viewport.Size {
	entry, ok := components.Window.First(w)
	if !ok {
		return nil
	}
	window := components.Window.Get(entry)
	if !window.Known {
		return nil
	}
	size := window.Size
	return &size
}
