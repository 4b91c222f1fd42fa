package factory

import (
	"github.com/automoto/skyward/archetypes"
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its bottom-left corner at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Player.Gravity,
		Friction:     cfg.Player.Friction,
		MaxSpeed:     cfg.Player.MaxSpeed,
		MaxFallSpeed: cfg.Player.MaxFallSpeed,
	})

	return player
}
