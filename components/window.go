package components

import (
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
)

// WindowData is the windowing layer as seen by the game systems.
type WindowData struct {
	Size    viewport.Size
	Known   bool // false until the first size notification
	Resized bool // one-shot: at least one resize was drained this tick
	Drained int  // notifications drained this tick
}

var Window = donburi.NewComponentType[WindowData]()
