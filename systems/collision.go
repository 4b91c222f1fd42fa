package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// landingTolerance lets a player whose feet dipped slightly into a platform
// last tick still land on it.
const landingTolerance = 4

// UpdateCollisions moves the player by its speed. Platforms are one-way:
// they are passed through going up and landed on coming down, and every
// landing bounces the player back up.
func UpdateCollisions(ecs *ecs.ECS) {
	width := playfieldWidth(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX
		wrapHorizontal(obj.Object, width)

		if resolvePlatformLanding(physics, obj.Object) {
			physics.SpeedY = cfg.Player.JumpSpeed
			player.Jumps++
		}
	})
}

// resolvePlatformLanding applies the vertical move, snapping onto the highest
// platform crossed while falling. Reports whether the object landed.
func resolvePlatformLanding(physics *components.PhysicsData, object *resolv.Object) bool {
	physics.OnGround = nil
	dy := physics.SpeedY
	if dy > 0 {
		object.Y += dy
		return false
	}

	check := object.Check(0, dy-1, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return false
	}

	// Check only reports objects sharing a space cell, so overlap is
	// confirmed here.
	var landed *resolv.Object
	for _, platform := range check.ObjectsByTags(tags.ResolvPlatform) {
		top := platform.Y + platform.H
		if object.X+object.W <= platform.X || object.X >= platform.X+platform.W {
			continue
		}
		if object.Y+dy-1 > top {
			continue // not reached this tick
		}
		if object.Y < top-landingTolerance {
			continue // already below the surface, falling through
		}
		if landed == nil || top > landed.Y+landed.H {
			landed = platform
		}
	}
	if landed == nil {
		object.Y += dy
		return false
	}

	physics.OnGround = landed
	object.Y = landed.Y + landed.H
	return true
}

// wrapHorizontal moves an object that left one side of the playfield back
// in from the other, judged by its center.
func wrapHorizontal(object *resolv.Object, width float64) {
	if width <= 0 {
		return
	}
	center := object.X + object.W/2
	if center < 0 {
		object.X += width
	} else if center >= width {
		object.X -= width
	}
}

func playfieldWidth(ecs *ecs.ECS) float64 {
	if entry, ok := components.LevelGen.First(ecs.World); ok {
		return components.LevelGen.Get(entry).Width
	}
	return float64(cfg.C.Width)
}
