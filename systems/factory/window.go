package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/lifecycle"
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWindow spawns the window singleton with a known initial size.
func CreateWindow(ecs *ecs.ECS, size viewport.Size) *donburi.Entry {
	window := archetypes.Window.Spawn(ecs)
	components.Window.SetValue(window, components.WindowData{
		Size:  size,
		Known: true,
	})
	return window
}

// CreateLifecycle spawns the lifecycle singleton in the given mode.
func CreateLifecycle(ecs *ecs.ECS, initial cfg.AppMode) *donburi.Entry {
	entry := archetypes.Lifecycle.Spawn(ecs)
	components.Lifecycle.SetValue(entry, components.LifecycleData{
		Machine: lifecycle.NewMachine(initial),
		Entered: true,
	})
	return entry
}

// CreateScore spawns the score singleton with the best height restored from disk.
func CreateScore(ecs *ecs.ECS, best float64) *donburi.Entry {
	score := archetypes.Score.Spawn(ecs)
	components.Score.SetValue(score, components.ScoreData{Best: best})
	return score
}
