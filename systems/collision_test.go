package systems

import (
	"testing"

	"github.com/automoto/skyward/components"
	"github.com/automoto/skyward/systems/factory"
	"github.com/automoto/skyward/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestResolvePlatformLanding(t *testing.T) {
	cases := []struct {
		name       string
		playerY    float64
		speedY     float64
		wantLanded bool
		wantY      float64
	}{
		{"falling_onto_top", 115, -5, true, 112},
		{"standing_on_top", 112, 0, true, 112},
		{"moving_up_passes_through", 90, 5, false, 95},
		{"below_surface_falls_through", 105, -2, false, 103},
		{"clear_fall", 300, -5, false, 295},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			space := resolv.NewSpace(800, 2000, 16, 16)
			platform := resolv.NewObject(0, 100, 96, 12, tags.ResolvPlatform)
			player := resolv.NewObject(10, c.playerY, 24, 32, tags.ResolvPlayer)
			space.Add(platform, player)

			physics := &components.PhysicsData{SpeedY: c.speedY}
			landed := resolvePlatformLanding(physics, player)
			if landed != c.wantLanded {
				t.Fatalf("expected landed=%v, got %v", c.wantLanded, landed)
			}
			if player.Y != c.wantY {
				t.Fatalf("expected y=%v, got %v", c.wantY, player.Y)
			}
			if landed && physics.OnGround != platform {
				t.Fatalf("landing should record the platform")
			}
		})
	}
}

func TestWrapHorizontal(t *testing.T) {
	cases := []struct {
		x, want float64
	}{
		{100, 100},
		{-20, 780},
		{790, -10},
		{-12, -12}, // center exactly on the left edge stays
	}
	for _, c := range cases {
		obj := resolv.NewObject(c.x, 0, 24, 32)
		wrapHorizontal(obj, 800)
		if obj.X != c.want {
			t.Fatalf("x=%v: expected %v, got %v", c.x, c.want, obj.X)
		}
	}
}

func TestDriftingPlatformSwings(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	platform := factory.CreateDriftingPlatform(e, 100, 400, 160, 1)
	obj := components.Object.Get(platform)

	var lowest, highest float64 = 1e9, -1e9
	for i := 0; i < 300; i++ {
		UpdatePlatforms(e)
		lowest = min(lowest, obj.X)
		highest = max(highest, obj.X)
		if obj.X < 100-0.001 || obj.X > 260+0.001 {
			t.Fatalf("tick %d: platform left its lane at x=%v", i, obj.X)
		}
	}
	if highest-lowest < 150 {
		t.Fatalf("platform barely moved: [%v, %v]", lowest, highest)
	}
	if obj.Y != 400 {
		t.Fatalf("drift must be horizontal only, y=%v", obj.Y)
	}
}
