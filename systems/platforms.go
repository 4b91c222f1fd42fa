package systems

import (
	"github.com/automoto/skyward/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickSeconds is the duration of one fixed update.
const tickSeconds = float32(1) / ebiten.DefaultTPS

// UpdatePlatforms advances the drift tween of every drifting platform.
// A finished drift starts over, so platforms swing back and forth forever.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Tween.Get(e)
		offset, _, done := seq.Update(tickSeconds)
		if done {
			seq.Reset()
		}

		platform := components.Platform.Get(e)
		obj := components.Object.Get(e)
		obj.X = platform.BaseX + float64(offset)
	})
}
