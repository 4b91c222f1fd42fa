package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/fonts"
	"github.com/automoto/skyward/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(ecs *ecs.ECS) {
	if GetAction(getOrCreateInput(ecs), cfg.ActionDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines every collision object and prints the viewport state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}

			p := worldToScreen(camera.Position, screen, obj.X, obj.Y+obj.H)
			x, y := float32(p.X), float32(p.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	lines := []string{
		fmt.Sprintf("camera %.0f,%.0f frozen=%v", camera.Position.X, camera.Position.Y, camera.Frozen),
	}
	if entry, ok := components.Background.First(ecs.World); ok {
		bg := components.Background.Get(entry)
		lines = append(lines, fmt.Sprintf("background %.0f,%.0f scale %.0fx%.0f",
			bg.Translation.X, bg.Translation.Y, bg.Scale.Width, bg.Scale.Height))
	}
	if mode, ok := CurrentMode(ecs.World); ok {
		lines = append(lines, fmt.Sprintf("mode %v/%v", mode, CurrentState(ecs.World)))
	}
	if window := windowSize(ecs.World); window != nil {
		lines = append(lines, fmt.Sprintf("window %.0fx%.0f", window.Width, window.Height))
	}

	face := fonts.HUD.Get()
	bottom := screen.Bounds().Dy() - hudMargin
	for i, line := range lines {
		y := bottom - (len(lines)-1-i)*hudLineHeight
		text.Draw(screen, line, face, hudMargin, y, cfg.UI.HUDColor)
	}
}
