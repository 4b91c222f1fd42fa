package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a static platform with its bottom-left corner at (x, y).
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64, ground bool) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{Ground: ground, BaseX: x})

	return platform
}

// CreateDriftingPlatform spawns a platform that drifts right by distance and
// back, one leg every seconds.
func CreateDriftingPlatform(ecs *ecs.ECS, x, y, distance float64, seconds float32) *donburi.Entry {
	platform := archetypes.DriftingPlatform.Spawn(ecs)
	object := resolv.NewObject(x, y, cfg.Platforms.Width, cfg.Platforms.Height, tags.ResolvPlatform)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	components.Platform.SetValue(platform, components.PlatformData{BaseX: x, Drifting: true})

	// The drift is a *gween.Sequence of two tweens, moving the platform back and forth.
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, float32(distance), seconds, ease.InOutSine),
		gween.New(float32(distance), 0, seconds, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}
