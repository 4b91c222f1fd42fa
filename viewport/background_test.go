package viewport

import (
	"errors"
	"testing"
)

func TestNewBackground(t *testing.T) {
	b := NewBackground(Position{X: 400, Y: 300, Z: 0}, Size{Width: 800, Height: 600}, -1)
	if b.Translation != (Position{X: 400, Y: 300, Z: -1}) {
		t.Fatalf("unexpected translation %+v", b.Translation)
	}
	if b.Scale != (Size{Width: 800, Height: 600}) {
		t.Fatalf("unexpected scale %+v", b.Scale)
	}
}

func TestBackgroundSync(t *testing.T) {
	initial := Size{Width: 800, Height: 600}

	cases := []struct {
		name      string
		camera    Position
		window    *Size
		resized   bool
		wantScale Size
		wantErr   error
	}{
		{"no_resize_keeps_scale", Position{X: 10, Y: 20, Z: 3}, sizePtr(1024, 768), false, initial, nil},
		{"no_resize_no_window", Position{X: 10, Y: 20}, nil, false, initial, nil},
		{"resize_rescales", Position{X: -5, Y: 1e4}, sizePtr(1024, 768), true, Size{Width: 1024, Height: 768}, nil},
		{"resize_without_window", Position{X: 1, Y: 2}, nil, true, initial, ErrMissingResource},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBackground(Position{}, initial, -1)
			got, err := b.Sync(c.camera, c.window, c.resized)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("expected error %v, got %v", c.wantErr, err)
			}
			// Translation mirrors the camera in every case, z stays behind gameplay.
			want := Position{X: c.camera.X, Y: c.camera.Y, Z: -1}
			if got.Translation != want || b.Translation != want {
				t.Fatalf("expected translation %+v, got %+v", want, b.Translation)
			}
			if b.Scale != c.wantScale {
				t.Fatalf("expected scale %+v, got %+v", c.wantScale, b.Scale)
			}
		})
	}
}

func TestBackgroundScaleTracksLatestResize(t *testing.T) {
	b := NewBackground(Position{}, Size{Width: 800, Height: 600}, -1)
	sizes := []Size{{1024, 768}, {640, 480}, {1920, 1080}}
	for _, s := range sizes {
		s := s
		if _, err := b.Sync(Position{}, &s, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// A quiet tick in between must not touch the scale.
		if _, err := b.Sync(Position{X: 1}, sizePtr(1, 1), false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Scale != s {
			t.Fatalf("expected scale %+v, got %+v", s, b.Scale)
		}
	}
}
