// Package viewport keeps the camera in step with the tracked player, the
// window and the application mode, and derives the background sprite
// transform from the camera. It does not depend on ebiten or donburi, so any
// single-loop game runtime can drive it.
//
// One tick runs in a fixed order: the player moves, then Viewport.Update,
// then Background.Sync. Advance runs the last two in that order.
package viewport

import (
	"errors"
	"fmt"

	"github.com/automoto/skyward/lifecycle"
)

var (
	// ErrMissingResource means an input the tick needs (window size, camera)
	// has not been initialised yet. Skip the tick and retry on the next one.
	ErrMissingResource = errors.New("viewport: missing resource")

	// ErrInvalidState means the application mode is not one the viewport
	// knows. Log it and leave the camera alone; the lifecycle owns correctness.
	ErrInvalidState = errors.New("viewport: invalid state")
)

// Position is a point in world units. The world is y-up.
type Position struct {
	X, Y, Z float64
}

// Size is a window size in logical pixels.
type Size struct {
	Width, Height float64
}

// Center returns the middle of the window, the camera's rest position.
func (s Size) Center() (x, y float64) {
	return s.Width / 2, s.Height / 2
}

// Tick is everything the viewport samples from its collaborators in one tick.
type Tick struct {
	Player  *Position // nil until the player has spawned
	Window  *Size     // nil until the windowing layer reports a size
	Resized bool      // a resize notification was drained this tick
	Mode    lifecycle.AppMode
}

// Viewport is the camera's logical position.
type Viewport struct {
	Position Position
	Frozen   bool // follow is suspended (game paused); resets still apply
}

// New returns a viewport resting at the window center.
func New(window Size, z float64) Viewport {
	x, y := window.Center()
	return Viewport{Position: Position{X: x, Y: y, Z: z}}
}

// Update applies one tick. The first matching rule wins:
//
//  1. GameCleanup: reset to the window center, unconditionally.
//  2. MainMenu with a resize this tick: reset to the window center.
//  3. Game with a player: copy the player's y. x is never followed.
//  4. Anything else leaves the position unchanged.
//
// On error the position is left unchanged and returned as is.
func (v *Viewport) Update(t Tick) (Position, error) {
	switch t.Mode {
	case lifecycle.GameCleanup:
		if t.Window == nil {
			return v.Position, fmt.Errorf("%w: no window size to reset to", ErrMissingResource)
		}
		v.Reset(*t.Window)
	case lifecycle.MainMenu:
		if !t.Resized {
			break
		}
		if t.Window == nil {
			return v.Position, fmt.Errorf("%w: resize without a window size", ErrMissingResource)
		}
		v.Reset(*t.Window)
	case lifecycle.Game:
		// Follow is best-effort: no player yet means nothing to follow.
		if t.Player != nil && !v.Frozen {
			v.Position.Y = t.Player.Y
		}
	case lifecycle.GameOver:
	default:
		return v.Position, fmt.Errorf("%w: unknown mode %v", ErrInvalidState, t.Mode)
	}
	return v.Position, nil
}

// Reset moves the camera to the window center. Z is preserved. Calling it
// twice in a row is the same as calling it once.
func (v *Viewport) Reset(window Size) Position {
	v.Position.X, v.Position.Y = window.Center()
	return v.Position
}

// Advance runs the camera update and then the background sync for one tick.
// The background is synced even when the camera update fails, so its
// translation never drifts from the camera.
func Advance(v *Viewport, b *Background, t Tick) error {
	_, camErr := v.Update(t)
	_, bgErr := b.Sync(v.Position, t.Window, t.Resized)
	return errors.Join(camErr, bgErr)
}
