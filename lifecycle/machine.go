// Package lifecycle holds the application mode and applies mode changes in
// two phases: callers request a change during a tick, and the dispatcher
// applies at most one pending change at the start of the next tick.
package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is returned for a request the transition table
	// does not allow from the current mode.
	ErrInvalidTransition = errors.New("lifecycle: invalid transition")

	// ErrRequestPending is returned when a different request is already
	// waiting to be applied this tick. Identical requests are coalesced.
	ErrRequestPending = errors.New("lifecycle: request already pending")
)

// transitions lists the modes reachable through Request from each mode.
// GameCleanup is only entered through RequestCleanup.
var transitions = map[AppMode][]AppMode{
	MainMenu:    {Game},
	Game:        {GameOver},
	GameOver:    {},
	GameCleanup: {MainMenu, Game},
}

// cleanupSources are the modes a session can be torn down from.
var cleanupSources = map[AppMode]bool{
	Game:     true,
	GameOver: true,
}

// Transition describes an applied mode change.
type Transition struct {
	From, To AppMode
}

type request struct {
	next   AppMode
	target AppMode // only meaningful when next == GameCleanup
}

// Machine is the single process-wide AppMode plus the Game sub-state.
// The zero value is a Machine in MainMenu.
type Machine struct {
	mode    AppMode
	state   GameState
	pending *request

	cleanupTarget AppMode
	inCleanup     bool
}

func NewMachine(initial AppMode) *Machine {
	return &Machine{mode: initial}
}

func (m *Machine) Mode() AppMode {
	return m.mode
}

func (m *Machine) State() GameState {
	return m.state
}

// Pending returns the mode that the next Apply will switch to.
func (m *Machine) Pending() (AppMode, bool) {
	if m.pending == nil {
		return 0, false
	}
	return m.pending.next, true
}

// CleanupTarget returns the mode to enter once the current cleanup completes.
func (m *Machine) CleanupTarget() (AppMode, bool) {
	return m.cleanupTarget, m.inCleanup
}

// Request asks for a change to next, applied by the following Apply.
func (m *Machine) Request(next AppMode) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown mode %v", ErrInvalidTransition, next)
	}
	if !allowed(m.mode, next) {
		return fmt.Errorf("%w: %v -> %v", ErrInvalidTransition, m.mode, next)
	}
	return m.enqueue(request{next: next})
}

// RequestCleanup asks to tear the session down and then move to next.
// The machine passes through GameCleanup for exactly one Apply cycle.
func (m *Machine) RequestCleanup(next AppMode) error {
	if !cleanupSources[m.mode] {
		return fmt.Errorf("%w: cleanup from %v", ErrInvalidTransition, m.mode)
	}
	if !allowed(GameCleanup, next) {
		return fmt.Errorf("%w: cleanup target %v", ErrInvalidTransition, next)
	}
	return m.enqueue(request{next: GameCleanup, target: next})
}

// CompleteCleanup requests the target recorded by RequestCleanup. It is
// called by the cleanup system once the session has been despawned.
func (m *Machine) CompleteCleanup() error {
	if m.mode != GameCleanup || !m.inCleanup {
		return fmt.Errorf("%w: not cleaning up (mode %v)", ErrInvalidTransition, m.mode)
	}
	return m.Request(m.cleanupTarget)
}

func (m *Machine) enqueue(r request) error {
	if m.pending != nil {
		if *m.pending == r {
			return nil
		}
		return fmt.Errorf("%w: %v already requested", ErrRequestPending, m.pending.next)
	}
	m.pending = &r
	return nil
}

// Apply switches to the pending mode, if any. Entering or leaving Game
// always resets the sub-state to Running.
func (m *Machine) Apply() (Transition, bool) {
	if m.pending == nil {
		return Transition{}, false
	}
	r := *m.pending
	m.pending = nil

	t := Transition{From: m.mode, To: r.next}
	m.mode = r.next
	m.state = Running

	if r.next == GameCleanup {
		m.cleanupTarget = r.target
		m.inCleanup = true
	} else {
		m.inCleanup = false
	}
	return t, true
}

// TogglePause flips between Running and Paused. Only valid in Game.
func (m *Machine) TogglePause() (GameState, error) {
	if m.mode != Game {
		return m.state, fmt.Errorf("%w: pause outside Game (mode %v)", ErrInvalidTransition, m.mode)
	}
	if m.state == Paused {
		m.state = Running
	} else {
		m.state = Paused
	}
	return m.state, nil
}

// Resume returns to Running. Only valid in Game.
func (m *Machine) Resume() error {
	if m.mode != Game {
		return fmt.Errorf("%w: resume outside Game (mode %v)", ErrInvalidTransition, m.mode)
	}
	m.state = Running
	return nil
}

func allowed(from, to AppMode) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
