package sprite

import (
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// QuadVertex matches the WGSL VertexInput in sprite.wgsl.
type QuadVertex struct {
	Pos [2]float32
	UV  [2]float32
}

// UnitQuad is the shared quad geometry: a triangle strip over [0,1]x[0,1].
// Every sprite instance is drawn over these four vertices; the table is never
// recomputed.
var UnitQuad = [4]QuadVertex{
	{Pos: [2]float32{0, 0}, UV: [2]float32{0, 0}},
	{Pos: [2]float32{1, 0}, UV: [2]float32{1, 0}},
	{Pos: [2]float32{0, 1}, UV: [2]float32{0, 1}},
	{Pos: [2]float32{1, 1}, UV: [2]float32{1, 1}},
}

// Instance is one drawn sprite. Field order defines the instance-buffer byte
// layout and matches the WGSL InstanceInput attribute offsets; the rotation
// matrix occupies four consecutive vec4 attribute slots, column by column.
type Instance struct {
	Translation  mgl32.Vec2
	Scale        mgl32.Vec2
	Velocity     mgl32.Vec2
	SpriteLT     mgl32.Vec2
	SpriteRB     mgl32.Vec2
	SpriteCenter mgl32.Vec2
	ColorBlend   mgl32.Vec4
	Rotation     mgl32.Mat4
}

// InstanceStride is the byte stride of one Instance in the instance buffer.
const InstanceStride = unsafe.Sizeof(Instance{})

// NewInstance returns an instance with identity transform and white tint.
func NewInstance() Instance {
	return Instance{
		Scale:      mgl32.Vec2{1, 1},
		SpriteRB:   mgl32.Vec2{1, 1},
		ColorBlend: mgl32.Vec4{1, 1, 1, 1},
		Rotation:   mgl32.Ident4(),
	}
}
