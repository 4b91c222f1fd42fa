package lifecycle

// AppMode is the top-level phase of the application.
type AppMode int

const (
	MainMenu    AppMode = iota // Title screen, no session entities
	Game                       // Active climbing session
	GameOver                   // Session ended, waiting for retry or back
	GameCleanup                // One tick: despawn the session and reset the camera
)

var appModeNames = [...]string{
	MainMenu:    "MainMenu",
	Game:        "Game",
	GameOver:    "GameOver",
	GameCleanup: "GameCleanup",
}

func (m AppMode) String() string {
	if !m.Valid() {
		return "AppMode(?)"
	}
	return appModeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m AppMode) Valid() bool {
	return m >= MainMenu && m <= GameCleanup
}

// GameState is the sub-state of the Game mode.
type GameState int

const (
	Running GameState = iota
	Paused
)

func (s GameState) String() string {
	if s == Paused {
		return "Paused"
	}
	return "Running"
}
