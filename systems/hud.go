package systems

import (
	"fmt"

	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 20
)

// DrawHUD renders the current and best climb height in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	score, ok := getScore(ecs)
	if !ok {
		return
	}
	if mode, ok := CurrentMode(ecs.World); !ok || mode != cfg.Game {
		return
	}

	face := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("Height: %d", int(score.Height)), face,
		hudMargin, hudMargin+hudLineHeight, cfg.UI.HUDColor)
	text.Draw(screen, fmt.Sprintf("Best:   %d", int(score.Best)), face,
		hudMargin, hudMargin+2*hudLineHeight, cfg.UI.HUDColor)
}
