package viewport

import "fmt"

// Background is the full-window sprite drawn behind the gameplay layer. Its
// translation mirrors the camera and its scale mirrors the window.
type Background struct {
	Translation Position // Z is the fixed background depth
	Scale       Size
}

// NewBackground places the background on the camera and sizes it to the window.
func NewBackground(camera Position, window Size, z float64) Background {
	return Background{
		Translation: Position{X: camera.X, Y: camera.Y, Z: z},
		Scale:       window,
	}
}

// Sync copies the camera position into the translation every tick. The scale
// is only recomputed on a resize tick; otherwise it is left untouched.
func (b *Background) Sync(camera Position, window *Size, resized bool) (Background, error) {
	b.Translation.X = camera.X
	b.Translation.Y = camera.Y

	if !resized {
		return *b, nil
	}
	if window == nil {
		return *b, fmt.Errorf("%w: resize without a window size", ErrMissingResource)
	}
	b.Scale = *window
	return *b, nil
}
