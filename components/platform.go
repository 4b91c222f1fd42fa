package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PlatformData struct {
	Ground   bool    // the floor a session starts on; never culled by height
	BaseX    float64 // left edge a drifting platform tweens from
	Drifting bool
}

var Platform = donburi.NewComponentType[PlatformData]()

// Tween drives a drifting platform's horizontal offset.
var Tween = donburi.NewComponentType[gween.Sequence]()
