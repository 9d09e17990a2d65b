package sprite

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes the world-space rectangle projected to clip space. It is
// read once per draw; mutating it mid-draw is the caller's bug.
type Camera struct {
	Left   float32
	Right  float32
	Bottom float32
	Top    float32
}

// NewCamera frames a width x height world rectangle with the origin at the
// top-left, Y growing downward.
func NewCamera(width, height float32) Camera {
	return Camera{
		Left:   0,
		Right:  width,
		Bottom: height,
		Top:    0,
	}
}

// Projection returns the camera's 4x4 projection matrix.
func (c Camera) Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(c.Left, c.Right, c.Bottom, c.Top)
}
