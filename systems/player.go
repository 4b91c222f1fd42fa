package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer steers the player. Jumping is automatic on landing, see
// UpdateCollisions.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		// Acceleration has to beat friction, which UpdatePhysics applies next.
		accel := cfg.Player.Acceleration + physics.Friction
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			physics.SpeedX -= accel
			player.Direction = -1
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			physics.SpeedX += accel
			player.Direction = 1
		}
	})
}
