package systems

import (
	"image/color"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/automoto/skyward/viewport"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// worldToScreen projects a y-up world point through the camera. The camera
// position lands on the middle of the screen.
func worldToScreen(camera viewport.Position, screen *ebiten.Image, x, y float64) math.Vec2 {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return math.Vec2{
		X: x - camera.X + float64(width)/2,
		Y: float64(height)/2 - (y - camera.Y),
	}
}

// DrawBackground draws the background sprite with the transform kept by
// UpdateBackground: centered on its translation, scaled to the window.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	backgroundEntry, ok := components.Background.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	background := components.Background.Get(backgroundEntry)

	// Lazily create the texture
	if background.Image == nil {
		background.Image = ebiten.NewImage(1, 1)
		background.Image.Fill(color.White)
	}

	t := background.Translation
	topLeft := worldToScreen(camera.Position, screen, t.X-background.Scale.Width/2, t.Y+background.Scale.Height/2)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(background.Scale.Width, background.Scale.Height)
	drawOp.GeoM.Translate(topLeft.X, topLeft.Y)
	drawOp.ColorScale.ScaleWithColor(cfg.Background.Color)
	screen.DrawImage(background.Image, drawOp)
}

// DrawPlatforms renders every platform that intersects the view.
func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		clr := cfg.Platforms.Color
		switch {
		case platform.Ground:
			clr = cfg.Platforms.GroundColor
		case platform.Drifting:
			clr = cfg.Platforms.DriftColor
		}
		obj := components.Object.Get(e)
		drawRect(screen, camera.Position, obj.X, obj.Y, obj.W, obj.H, clr)
	})
}

// DrawPlayer renders the player, plus its wrapped copy when it straddles
// a side of the playfield.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width := playfieldWidth(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		drawRect(screen, camera.Position, obj.X, obj.Y, obj.W, obj.H, cfg.Player.Color)

		switch {
		case obj.X < 0:
			drawRect(screen, camera.Position, obj.X+width, obj.Y, obj.W, obj.H, cfg.Player.Color)
		case obj.X+obj.W > width:
			drawRect(screen, camera.Position, obj.X-width, obj.Y, obj.W, obj.H, cfg.Player.Color)
		}
	})
}

// drawRect fills a world rectangle given by its bottom-left corner.
func drawRect(screen *ebiten.Image, camera viewport.Position, x, y, w, h float64, clr color.RGBA) {
	topLeft := worldToScreen(camera, screen, x, y+h)

	// Viewport culling
	bounds := screen.Bounds()
	if topLeft.X+w < 0 || topLeft.X > float64(bounds.Dx()) ||
		topLeft.Y+h < 0 || topLeft.Y > float64(bounds.Dy()) {
		return
	}

	vector.FillRect(screen,
		float32(topLeft.X), float32(topLeft.Y),
		float32(w), float32(h),
		clr, false)
}
