package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera resting at the window center.
func CreateCamera(ecs *ecs.ECS, window viewport.Size) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Viewport: viewport.New(window, cfg.Camera.Z),
	})
	return camera
}

// CreateBackground spawns the background on the camera, sized to the window.
// The sprite image is created lazily by the renderer.
func CreateBackground(ecs *ecs.ECS, camera viewport.Position, window viewport.Size) *donburi.Entry {
	background := archetypes.Background.Spawn(ecs)
	components.Background.SetValue(background, components.BackgroundData{
		Background: viewport.NewBackground(camera, window, cfg.Background.Z),
	})
	return background
}
