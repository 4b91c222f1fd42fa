package systems

import (
	cfg "github.com/automoto/skyward/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMenuKeys maps the select/back bindings onto the same requests the
// menu buttons publish, so menus work from the keyboard and gamepad too.
func UpdateMenuKeys(ecs *ecs.ECS) {
	mode, ok := CurrentMode(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	selected := GetAction(input, cfg.ActionMenuSelect).JustPressed
	back := GetAction(input, cfg.ActionMenuBack).JustPressed

	switch mode {
	case cfg.MainMenu:
		if selected {
			RequestMode(ecs.World, cfg.Game)
		}
	case cfg.Game:
		if back && CurrentState(ecs.World) == cfg.Paused {
			RequestCleanup(ecs.World, cfg.MainMenu)
		}
	case cfg.GameOver:
		if selected {
			RequestCleanup(ecs.World, cfg.Game)
		} else if back {
			RequestCleanup(ecs.World, cfg.MainMenu)
		}
	}
}
