package systems

import (
	"fmt"
	"log"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// lastMissingErr tracks errors reported before the owning singleton exists,
// so they are logged once rather than every tick.
var lastMissingErr = map[string]error{}

// UpdateCamera runs the viewport rules for this tick. Must run after every
// system that moves the player and before UpdateBackground.
// On error the camera keeps its position and the tick is retried next frame.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		reportMissing("camera", fmt.Errorf("%w: no camera entity", viewport.ErrMissingResource))
		return
	}
	reportMissing("camera", nil)
	camera := components.Camera.Get(cameraEntry)

	tick, err := sampleTick(e.World)
	if err == nil {
		_, err = camera.Update(tick)
	}
	camera.LastErr = logViewportError("camera", camera.LastErr, err)
}

// UpdateBackground mirrors the camera onto the background sprite. Must run
// right after UpdateCamera, and runs even when the camera update failed.
func UpdateBackground(e *ecs.ECS) {
	backgroundEntry, ok := components.Background.First(e.World)
	if !ok {
		reportMissing("background", fmt.Errorf("%w: no background entity", viewport.ErrMissingResource))
		return
	}
	reportMissing("background", nil)
	background := components.Background.Get(backgroundEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		background.LastErr = logViewportError("background", background.LastErr,
			fmt.Errorf("%w: no camera to follow", viewport.ErrMissingResource))
		return
	}
	camera := components.Camera.Get(cameraEntry)

	resized := false
	if entry, ok := components.Window.First(e.World); ok {
		resized = components.Window.Get(entry).Resized
	}
	_, err := background.Sync(camera.Position, windowSize(e.World), resized)
	background.LastErr = logViewportError("background", background.LastErr, err)
}

// sampleTick reads the collaborators the viewport depends on.
func sampleTick(w donburi.World) (viewport.Tick, error) {
	var t viewport.Tick

	mode, ok := CurrentMode(w)
	if !ok {
		return t, fmt.Errorf("%w: no lifecycle", viewport.ErrMissingResource)
	}
	t.Mode = mode
	t.Window = windowSize(w)
	if entry, ok := components.Window.First(w); ok {
		t.Resized = components.Window.Get(entry).Resized
	}
	if p, ok := playerPosition(w); ok {
		t.Player = &p
	}
	return t, nil
}

func playerPosition(w donburi.World) (viewport.Position, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return viewport.Position{}, false
	}
	obj := components.Object.Get(entry)
	return viewport.Position{X: obj.X, Y: obj.Y}, true
}

func defaultWindowSize() *viewport.Size {
	return &viewport.Size{Width: float64(cfg.C.Width), Height: float64(cfg.C.Height)}
}

// logViewportError logs err when it differs from the previous tick's error
// and returns it as the new previous error.
func logViewportError(owner string, prev, err error) error {
	if err != nil && (prev == nil || prev.Error() != err.Error()) {
		log.Printf("Warning: %s skipped this tick: %v", owner, err)
	}
	if err == nil && prev != nil {
		log.Printf("%s recovered", owner)
	}
	return err
}

func reportMissing(owner string, err error) {
	lastMissingErr[owner] = logViewportError(owner, lastMissingErr[owner], err)
}
