package viewport

import (
	"errors"
	"testing"

	"github.com/automoto/skyward/lifecycle"
)

func sizePtr(w, h float64) *Size {
	return &Size{Width: w, Height: h}
}

func posPtr(x, y, z float64) *Position {
	return &Position{X: x, Y: y, Z: z}
}

func TestNewRestsAtWindowCenter(t *testing.T) {
	v := New(Size{Width: 800, Height: 600}, 0)
	if v.Position != (Position{X: 400, Y: 300}) {
		t.Fatalf("expected (400,300,0), got %+v", v.Position)
	}
	if v.Frozen {
		t.Fatalf("new viewport should not be frozen")
	}
}

func TestUpdateRules(t *testing.T) {
	start := Position{X: 50, Y: 340, Z: 7}

	cases := []struct {
		name    string
		tick    Tick
		frozen  bool
		want    Position
		wantErr error
	}{
		{
			name: "game_follows_player_y_only",
			tick: Tick{Player: posPtr(120, 900, 0), Window: sizePtr(800, 600), Mode: lifecycle.Game},
			want: Position{X: 50, Y: 900, Z: 7},
		},
		{
			name: "game_without_player_is_unchanged",
			tick: Tick{Window: sizePtr(800, 600), Mode: lifecycle.Game},
			want: start,
		},
		{
			name: "game_follow_does_not_need_window",
			tick: Tick{Player: posPtr(0, 12, 0), Mode: lifecycle.Game},
			want: Position{X: 50, Y: 12, Z: 7},
		},
		{
			name:   "game_frozen_does_not_follow",
			tick:   Tick{Player: posPtr(120, 900, 0), Window: sizePtr(800, 600), Mode: lifecycle.Game},
			frozen: true,
			want:   start,
		},
		{
			name: "game_resize_does_not_reset",
			tick: Tick{Player: posPtr(120, 900, 0), Window: sizePtr(1024, 768), Resized: true, Mode: lifecycle.Game},
			want: Position{X: 50, Y: 900, Z: 7},
		},
		{
			name: "cleanup_resets_unconditionally",
			tick: Tick{Player: posPtr(120, 900, 0), Window: sizePtr(800, 600), Mode: lifecycle.GameCleanup},
			want: Position{X: 400, Y: 300, Z: 7},
		},
		{
			name:   "cleanup_resets_even_when_frozen",
			tick:   Tick{Window: sizePtr(800, 600), Mode: lifecycle.GameCleanup},
			frozen: true,
			want:   Position{X: 400, Y: 300, Z: 7},
		},
		{
			name: "menu_resize_resets",
			tick: Tick{Window: sizePtr(1280, 720), Resized: true, Mode: lifecycle.MainMenu},
			want: Position{X: 640, Y: 360, Z: 7},
		},
		{
			name: "menu_without_resize_is_unchanged",
			tick: Tick{Window: sizePtr(1280, 720), Mode: lifecycle.MainMenu},
			want: start,
		},
		{
			name: "menu_ignores_player",
			tick: Tick{Player: posPtr(1, 2, 3), Window: sizePtr(800, 600), Mode: lifecycle.MainMenu},
			want: start,
		},
		{
			name: "game_over_is_unchanged",
			tick: Tick{Player: posPtr(120, 900, 0), Window: sizePtr(800, 600), Resized: true, Mode: lifecycle.GameOver},
			want: start,
		},
		{
			name:    "cleanup_without_window_is_missing_resource",
			tick:    Tick{Mode: lifecycle.GameCleanup},
			want:    start,
			wantErr: ErrMissingResource,
		},
		{
			name:    "menu_resize_without_window_is_missing_resource",
			tick:    Tick{Resized: true, Mode: lifecycle.MainMenu},
			want:    start,
			wantErr: ErrMissingResource,
		},
		{
			name:    "unknown_mode_is_invalid_state",
			tick:    Tick{Player: posPtr(120, 900, 0), Window: sizePtr(800, 600), Mode: lifecycle.AppMode(42)},
			want:    start,
			wantErr: ErrInvalidState,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Viewport{Position: start, Frozen: c.frozen}
			got, err := v.Update(c.tick)
			if c.wantErr != nil {
				if !errors.Is(err, c.wantErr) {
					t.Fatalf("expected error %v, got %v", c.wantErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != c.want {
				t.Fatalf("returned position: expected %+v, got %+v", c.want, got)
			}
			if v.Position != c.want {
				t.Fatalf("stored position: expected %+v, got %+v", c.want, v.Position)
			}
		})
	}
}

func TestCleanupResetIsIdempotent(t *testing.T) {
	v := Viewport{Position: Position{X: -3, Y: 9999}}
	tick := Tick{Window: sizePtr(800, 600), Mode: lifecycle.GameCleanup}

	once, err := v.Update(tick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := v.Update(tick)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once != twice {
		t.Fatalf("reset not idempotent: %+v then %+v", once, twice)
	}
}

func TestFollowSequenceKeepsX(t *testing.T) {
	v := New(Size{Width: 800, Height: 600}, 0)
	for _, y := range []float64{10, 250, -40, 1e6} {
		got, err := v.Update(Tick{Player: posPtr(y*2, y, 0), Mode: lifecycle.Game})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.X != 400 || got.Y != y {
			t.Fatalf("expected (400,%v), got %+v", y, got)
		}
	}
}

// Window 800x600, player at (120, 340, 0), mode Game, no resize.
func TestScenarioFollowWithoutResize(t *testing.T) {
	window := Size{Width: 800, Height: 600}
	v := Viewport{Position: Position{X: 77, Y: 10}}
	b := NewBackground(v.Position, window, -1)
	prevScale := b.Scale

	err := Advance(&v, &b, Tick{
		Player: posPtr(120, 340, 0),
		Window: &window,
		Mode:   lifecycle.Game,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Position.X != 77 || v.Position.Y != 340 {
		t.Fatalf("camera: expected (77,340), got %+v", v.Position)
	}
	if b.Translation.X != 77 || b.Translation.Y != 340 {
		t.Fatalf("background translation: expected (77,340), got %+v", b.Translation)
	}
	if b.Scale != prevScale {
		t.Fatalf("background scale changed without a resize: %+v -> %+v", prevScale, b.Scale)
	}
}

// Game -> GameCleanup with the camera at (50, 340) lands on (400, 300).
func TestScenarioCleanupTransition(t *testing.T) {
	window := Size{Width: 800, Height: 600}
	v := Viewport{Position: Position{X: 50, Y: 340}}
	b := NewBackground(v.Position, window, -1)

	if err := Advance(&v, &b, Tick{Player: posPtr(50, 340, 0), Window: &window, Mode: lifecycle.Game}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Advance(&v, &b, Tick{Player: posPtr(50, 340, 0), Window: &window, Mode: lifecycle.GameCleanup}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Position.X != 400 || v.Position.Y != 300 {
		t.Fatalf("expected (400,300), got %+v", v.Position)
	}
	if b.Translation.X != 400 || b.Translation.Y != 300 {
		t.Fatalf("background should follow the reset, got %+v", b.Translation)
	}
}

func TestAdvanceSyncsBackgroundOnCameraError(t *testing.T) {
	v := Viewport{Position: Position{X: 5, Y: 6}}
	b := Background{Translation: Position{X: 1, Y: 1, Z: -1}, Scale: Size{Width: 10, Height: 10}}

	err := Advance(&v, &b, Tick{Mode: lifecycle.AppMode(-1)})
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if b.Translation.X != 5 || b.Translation.Y != 6 || b.Translation.Z != -1 {
		t.Fatalf("background translation should mirror the camera, got %+v", b.Translation)
	}
}
