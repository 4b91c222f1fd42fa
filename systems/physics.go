package systems

import (
	"github.com/automoto/skyward/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction, the horizontal speed cap and gravity.
// The world is y-up, so gravity is negative and falling speed is clamped
// from below.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		friction := physics.Friction
		if physics.SpeedX > friction {
			physics.SpeedX -= friction
		} else if physics.SpeedX < -friction {
			physics.SpeedX += friction
		} else {
			physics.SpeedX = 0
		}

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY < -physics.MaxFallSpeed {
			physics.SpeedY = -physics.MaxFallSpeed
		}
	})
}
