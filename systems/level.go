package systems

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevelGen keeps platforms generated SpawnAhead above the top of the
// view and removes the ones that fell out of reach below the fall limit.
func UpdateLevelGen(ecs *ecs.ECS) {
	genEntry, ok := components.LevelGen.First(ecs.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	gen := components.LevelGen.Get(genEntry)
	space := components.Space.Get(spaceEntry)
	camera := components.Camera.Get(cameraEntry)

	window := windowSize(ecs.World)
	if window == nil {
		window = defaultWindowSize()
	}

	top := camera.Position.Y + window.Height/2 + cfg.Platforms.SpawnAhead
	for gen.NextY < top {
		if factory.GenerateNext(ecs, gen, space) == nil {
			break
		}
	}

	score, ok := getScore(ecs)
	if !ok {
		return
	}
	cull := score.StartY + score.Height - cfg.Player.FallLimit - cfg.Platforms.CullBelow

	var culled []*donburi.Entry
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		if components.Platform.Get(e).Ground {
			return
		}
		obj := components.Object.Get(e)
		if obj.Y+obj.H < cull {
			culled = append(culled, e)
		}
	})
	for _, e := range culled {
		space.Remove(components.Object.Get(e).Object)
		ecs.World.Remove(e.Entity())
	}
}
