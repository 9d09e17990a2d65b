package sprite

import (
	"github.com/go-gl/mathgl/mgl32"
)

// The functions in this file are the CPU reference for the two sprite shader
// stages. Each is a pure function of its inputs with no state between
// invocations, mirroring sprite.wgsl exactly; the property tests run against
// them.

// VertexOutput is what the vertex stage hands to the rasterizer: a clip-space
// position plus the two values interpolated for the fragment stage.
type VertexOutput struct {
	ClipPos mgl32.Vec4
	UV      mgl32.Vec2
	Tint    mgl32.Vec4
}

// TransformVertex runs the sprite vertex stage for one (quad vertex, instance)
// pair. The rotation matrix is honored as supplied, valid or not; a zero scale
// collapses the sprite to a point.
func TransformVertex(v QuadVertex, inst Instance, proj mgl32.Mat4, elapsed float32) VertexOutput {
	local := inst.Rotation.Mul4x1(mgl32.Vec4{
		(v.Pos[0] - inst.SpriteCenter[0]) * inst.Scale[0],
		(v.Pos[1] - inst.SpriteCenter[1]) * inst.Scale[1],
		0,
		1,
	})

	worldX := local.X() + inst.Translation[0] + inst.Velocity[0]*elapsed
	worldY := local.Y() + inst.Translation[1] + inst.Velocity[1]*elapsed

	return VertexOutput{
		ClipPos: proj.Mul4x1(mgl32.Vec4{worldX, worldY, 0, 1}),
		UV: mgl32.Vec2{
			mix(inst.SpriteLT[0], inst.SpriteRB[0], v.UV[0]),
			mix(inst.SpriteLT[1], inst.SpriteRB[1], v.UV[1]),
		},
		Tint: inst.ColorBlend,
	}
}

// Composite runs the sprite fragment stage for one pixel: the sampled texel
// multiplied component-wise by the interpolated tint. No clamping; tints above
// one brighten.
func Composite(sample, tint mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{
		sample[0] * tint[0],
		sample[1] * tint[1],
		sample[2] * tint[2],
		sample[3] * tint[3],
	}
}

func mix(a, b, t float32) float32 {
	return a + (b-a)*t
}
