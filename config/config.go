package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the game.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int // Initial window width
	Height int // Initial window height
	Title  string
}

// CameraConfig contains camera configuration
type CameraConfig struct {
	Z float64 // Camera depth; only carried through to the projection layer
}

// BackgroundConfig contains the camera background sprite configuration
type BackgroundConfig struct {
	Z     float64 // Always behind the gameplay layer
	Color color.RGBA
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	JumpSpeed    float64 // Upward speed applied when bouncing off a platform
	Acceleration float64
	MaxSpeed     float64
	Friction     float64

	// Physics (world is y-up, so gravity is negative)
	Gravity      float64
	MaxFallSpeed float64

	// Falling this far below the best height reached ends the run
	FallLimit float64

	// Dimensions
	Width  float64
	Height float64
	Color  color.RGBA
}

// PlatformConfig contains procedural platform generation values
type PlatformConfig struct {
	Width          float64
	Height         float64
	MinGap         float64 // Vertical distance between consecutive platforms
	MaxGap         float64
	DriftChance    float64 // Probability that a platform drifts horizontally
	DriftDistance  float64 // Pixels travelled by a drifting platform
	DriftSeconds   float32 // Duration of one drift leg
	SpawnAhead     float64 // Generate platforms this far above the top of the view
	CullBelow      float64 // Remove platforms this far below the bottom of the view
	Color          color.RGBA
	DriftColor     color.RGBA
	CellSize       int // resolv space cell size
	SpaceHeight    int // resolv space height; generation stops at the top
	GroundColor    color.RGBA
	StartPlatforms int // Platforms generated when a session starts
}

// UIConfig contains menu and HUD colours. Button colours mirror the
// idle/hover/pressed triple of the menu buttons.
type UIConfig struct {
	ButtonDefault color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonText    color.RGBA
	MenuOverlay   color.RGBA
	TitleColor    color.RGBA
	HUDColor      color.RGBA
	TitleSize     float64
	ButtonSize    float64
	HUDFontSize   float64
	ButtonWidth   int
	ButtonHeight  int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to game
	TuningPath  string // Optional on-disk tuning file
	WatchTuning bool   // Re-apply the tuning file when it changes
	Overlay     bool   // Draw collision boxes and viewport state (F1)
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Background BackgroundConfig
var Player PlayerConfig
var Platforms PlatformConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	SkyBlue      = color.RGBA{R: 40, G: 60, B: 110, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Skyward",
	}

	Camera = CameraConfig{
		Z: 0,
	}

	Background = BackgroundConfig{
		Z:     -1,
		Color: SkyBlue,
	}

	Player = PlayerConfig{
		JumpSpeed:    13.0,
		Acceleration: 0.8,
		MaxSpeed:     6.0,
		Friction:     0.35,
		Gravity:      -0.45,
		MaxFallSpeed: 14.0,
		FallLimit:    600,
		Width:        24,
		Height:       32,
		Color:        Orange,
	}

	Platforms = PlatformConfig{
		Width:          96,
		Height:         12,
		MinGap:         70,
		MaxGap:         130,
		DriftChance:    0.2,
		DriftDistance:  160,
		DriftSeconds:   2,
		SpawnAhead:     200,
		CullBelow:      100,
		Color:          LightGreen,
		DriftColor:     BrightYellow,
		CellSize:       64,
		SpaceHeight:    1 << 18,
		GroundColor:    color.RGBA{R: 60, G: 40, B: 30, A: 255},
		StartPlatforms: 12,
	}

	// Button colours (idle/hover/pressed)
	UI = UIConfig{
		ButtonDefault: color.RGBA{R: 38, G: 38, B: 38, A: 255},
		ButtonHover:   color.RGBA{R: 64, G: 64, B: 64, A: 255},
		ButtonPressed: color.RGBA{R: 90, G: 140, B: 90, A: 255},
		ButtonText:    White,
		MenuOverlay:   BlackOverlay,
		TitleColor:    White,
		HUDColor:      White,
		TitleSize:     32,
		ButtonSize:    18,
		HUDFontSize:   16,
		ButtonWidth:   200,
		ButtonHeight:  48,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
