package components

import (
	"github.com/automoto/skyward/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// BackgroundData is the full-window sprite drawn behind gameplay. Created once
// at startup and never destroyed.
type BackgroundData struct {
	viewport.Background
	Image   *ebiten.Image // 1x1 texture, scaled to the window when drawn
	LastErr error
}

var Background = donburi.NewComponentType[BackgroundData]()
