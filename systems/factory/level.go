package factory

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GenerateNext spawns the platform at gen.NextY and advances NextY by a
// random gap. Returns nil once the top of the space has been reached.
func GenerateNext(ecs *ecs.ECS, gen *components.LevelGenData, space *resolv.Space) *donburi.Entry {
	if gen.NextY >= gen.Top {
		return nil
	}

	w := cfg.Platforms.Width
	y := gen.NextY
	gen.NextY += cfg.Platforms.MinGap + gen.Rand.Float64()*(cfg.Platforms.MaxGap-cfg.Platforms.MinGap)

	var platform *donburi.Entry
	drift := cfg.Platforms.DriftDistance
	if gen.Rand.Float64() < cfg.Platforms.DriftChance && gen.Width > w+drift {
		x := gen.Rand.Float64() * (gen.Width - w - drift)
		platform = CreateDriftingPlatform(ecs, x, y, drift, cfg.Platforms.DriftSeconds)
	} else {
		x := gen.Rand.Float64() * max(gen.Width-w, 0)
		platform = CreatePlatform(ecs, x, y, w, cfg.Platforms.Height, false)
	}

	space.Add(components.Object.Get(platform).Object)
	return platform
}
