package factory

import (
	"testing"

	"github.com/automoto/skyward/components"
	cfg "github.com/automoto/skyward/config"
	"github.com/automoto/skyward/tags"
	"github.com/automoto/skyward/viewport"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countSession(w donburi.World) int {
	n := 0
	tags.Session.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestStartSessionPlacesPlayerAtWindowCenter(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateScore(e, 0)
	window := viewport.Size{Width: 800, Height: 600}

	player := StartSession(e, window, 1)
	obj := components.Object.Get(player)
	if obj.X+obj.W/2 != 400 || obj.Y != 300 {
		t.Fatalf("expected the player centered on (400,300), got x=%v y=%v", obj.X+obj.W/2, obj.Y)
	}

	scoreEntry, _ := components.Score.First(e.World)
	if score := components.Score.Get(scoreEntry); score.StartY != 300 || score.Height != 0 {
		t.Fatalf("score not reset: %+v", score)
	}

	platforms := 0
	components.Platform.Each(e.World, func(entry *donburi.Entry) {
		if !components.Platform.Get(entry).Ground {
			platforms++
		}
	})
	if platforms != cfg.Platforms.StartPlatforms {
		t.Fatalf("expected %d platforms, got %d", cfg.Platforms.StartPlatforms, platforms)
	}
}

func TestGenerateNextKeepsPlatformsInside(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	StartSession(e, viewport.Size{Width: 500, Height: 400}, 42)
	genEntry, _ := components.LevelGen.First(e.World)
	gen := components.LevelGen.Get(genEntry)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)

	prevY := gen.NextY
	for i := 0; i < 200; i++ {
		p := GenerateNext(e, gen, space)
		if p == nil {
			t.Fatalf("generation stopped early at y=%v", gen.NextY)
		}
		obj := components.Object.Get(p)
		reach := obj.W
		if components.Platform.Get(p).Drifting {
			reach += cfg.Platforms.DriftDistance
		}
		if obj.X < 0 || obj.X+reach > gen.Width {
			t.Fatalf("platform out of the playfield: x=%v reach=%v", obj.X, reach)
		}
		gap := gen.NextY - prevY
		if gap < cfg.Platforms.MinGap || gap > cfg.Platforms.MaxGap {
			t.Fatalf("gap %v outside [%v, %v]", gap, cfg.Platforms.MinGap, cfg.Platforms.MaxGap)
		}
		prevY = gen.NextY
	}

	gen.NextY = gen.Top
	if GenerateNext(e, gen, space) != nil {
		t.Fatalf("no platform may be generated past the top of the space")
	}
}

func TestDespawnSessionKeepsSingletons(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	window := viewport.Size{Width: 800, Height: 600}
	CreateWindow(e, window)
	CreateLifecycle(e, cfg.Game)
	CreateCamera(e, window)
	CreateScore(e, 10)

	StartSession(e, window, 7)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)
	if countSession(e.World) == 0 || len(space.Objects()) == 0 {
		t.Fatalf("session should have spawned entities")
	}

	removed := DespawnSession(e)
	if removed == 0 || countSession(e.World) != 0 {
		t.Fatalf("expected every session entity removed, %d left", countSession(e.World))
	}
	if n := len(space.Objects()); n != 0 {
		t.Fatalf("expected an empty space, %d objects left", n)
	}
	for name, ok := range map[string]bool{
		"window":    hasFirst(e, components.Window),
		"lifecycle": hasFirst(e, components.Lifecycle),
		"camera":    hasFirst(e, components.Camera),
		"score":     hasFirst(e, components.Score),
	} {
		if !ok {
			t.Fatalf("%s singleton must survive cleanup", name)
		}
	}
	if DespawnSession(e) != 0 {
		t.Fatalf("despawning twice should be a no-op")
	}
}

func hasFirst[T any](e *ecs.ECS, c *donburi.ComponentType[T]) bool {
	_, ok := c.First(e.World)
	return ok
}
