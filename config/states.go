package config

import "github.com/automoto/skyward/lifecycle"

// Type aliases so gameplay code can keep using config.AppMode etc.
type AppMode = lifecycle.AppMode
type GameState = lifecycle.GameState

// Re-export application modes.
const (
	MainMenu    = lifecycle.MainMenu
	Game        = lifecycle.Game
	GameOver    = lifecycle.GameOver
	GameCleanup = lifecycle.GameCleanup
)

// Re-export game sub-states.
const (
	Running = lifecycle.Running
	Paused  = lifecycle.Paused
)
