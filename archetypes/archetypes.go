package archetypes

import (
	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Process-wide singletons, spawned once at startup.
	Window = newArchetype(
		components.Window,
	)
	Lifecycle = newArchetype(
		components.Lifecycle,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Background = newArchetype(
		components.Background,
	)
	Score = newArchetype(
		components.Score,
	)

	// Session entities, despawned on GameCleanup.
	Player = newArchetype(
		tags.Player,
		tags.Session,
		components.Player,
		components.Object,
		components.Physics,
	)
	Platform = newArchetype(
		tags.Platform,
		tags.Session,
		components.Platform,
		components.Object,
	)
	DriftingPlatform = newArchetype(
		tags.Platform,
		tags.Session,
		components.Platform,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		tags.Session,
		components.Space,
	)
	LevelGen = newArchetype(
		tags.Session,
		components.LevelGen,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
