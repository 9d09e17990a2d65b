package content

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TileRegion is an integer sub-rectangle of an atlas texture plus a pivot
// point, all in texels. It converts to the normalized coordinates the sprite
// pipeline consumes.
type TileRegion struct {
	Left    uint32
	Top     uint32
	Width   uint32
	Height  uint32
	CenterX uint32
	CenterY uint32
}

// LT returns the normalized top-left atlas coordinate of the region.
func (r TileRegion) LT(atlasWidth, atlasHeight uint32) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(r.Left) / float32(atlasWidth),
		float32(r.Top) / float32(atlasHeight),
	}
}

// RB returns the normalized bottom-right atlas coordinate of the region.
func (r TileRegion) RB(atlasWidth, atlasHeight uint32) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(r.Left+r.Width) / float32(atlasWidth),
		float32(r.Top+r.Height) / float32(atlasHeight),
	}
}

// Center returns the pivot in quad-local units. A degenerate region pivots at
// its origin.
func (r TileRegion) Center() mgl32.Vec2 {
	var c mgl32.Vec2
	if r.Width > 0 {
		c[0] = float32(r.CenterX) / float32(r.Width)
	}
	if r.Height > 0 {
		c[1] = float32(r.CenterY) / float32(r.Height)
	}
	return c
}
