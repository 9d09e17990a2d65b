package shaders

import (
	_ "embed"
)

//go:embed sprite.wgsl
var SpriteWGSL string

//go:embed quad.wgsl
var QuadWGSL string

//go:embed triangle.wgsl
var TriangleWGSL string

//go:embed flat.wgsl
var FlatWGSL string
