package components

import (
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
)

// CameraData is the single viewport of the session.
type CameraData struct {
	viewport.Viewport
	LastErr error // Last update error, used to log each failure once
}

var Camera = donburi.NewComponentType[CameraData]()
