package factory

import (
	"math/rand"

	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// StartSession spawns the entities of one run: the collision space, the
// ground filling the lower half of the window, the player standing on it at
// the window center, and the first rows of platforms above.
func StartSession(ecs *ecs.ECS, window viewport.Size, seed int64) *donburi.Entry {
	width := window.Width
	groundTop := window.Height / 2

	spaceEntry := CreateSpace(ecs,
		int(width),
		cfg.Platforms.SpaceHeight,
		cfg.Platforms.CellSize, cfg.Platforms.CellSize,
	)
	space := components.Space.Get(spaceEntry)

	ground := CreatePlatform(ecs, 0, 0, width, groundTop, true)
	space.Add(components.Object.Get(ground).Object)

	player := CreatePlayer(ecs, width/2-cfg.Player.Width/2, groundTop)
	space.Add(components.Object.Get(player).Object)

	if scoreEntry, ok := components.Score.First(ecs.World); ok {
		score := components.Score.Get(scoreEntry)
		score.StartY = groundTop
		score.Height = 0
	}

	genEntry := archetypes.LevelGen.Spawn(ecs)
	components.LevelGen.SetValue(genEntry, components.LevelGenData{
		NextY: groundTop + cfg.Platforms.MinGap,
		Width: width,
		Top:   float64(cfg.Platforms.SpaceHeight) - 2*cfg.Platforms.MaxGap,
		Rand:  rand.New(rand.NewSource(seed)),
	})
	gen := components.LevelGen.Get(genEntry)
	for i := 0; i < cfg.Platforms.StartPlatforms; i++ {
		if GenerateNext(ecs, gen, space) == nil {
			break
		}
	}

	return player
}

// DespawnSession removes every session entity from the world, taking the
// collision objects out of the space first. Returns the number removed.
func DespawnSession(ecs *ecs.ECS) int {
	var entries []*donburi.Entry
	donburi.NewQuery(filter.Contains(tags.Session)).Each(ecs.World, func(e *donburi.Entry) {
		entries = append(entries, e)
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, e := range entries {
			if e.HasComponent(components.Object) {
				space.Remove(components.Object.Get(e).Object)
			}
		}
	}

	for _, e := range entries {
		ecs.World.Remove(e.Entity())
	}
	return len(entries)
}
