package systems

import (
	cfg "github.com/automoto/skyward/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause turns the pause binding into a toggle request.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	if mode, ok := CurrentMode(ecs.World); !ok || mode != cfg.Game {
		return
	}
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionPause).JustPressed {
		TogglePause(ecs.World)
	}
}

// WithGameplayChecks wraps a system to run only in Game while Running.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if mode, ok := CurrentMode(e.World); !ok || mode != cfg.Game {
			return
		}
		if CurrentState(e.World) == cfg.Paused {
			return
		}
		system(e)
	}
}

// WithMode wraps a system to run only in the given mode.
func WithMode(mode cfg.AppMode, system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if current, ok := CurrentMode(e.World); ok && current == mode {
			system(e)
		}
	}
}
