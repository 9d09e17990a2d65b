package sprite

import (
	"testing"

	"github.com/DarkKitsune/Fennec-Engine/content"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

// 2x2 texture: red, green / blue, white.
func testTexture() *content.Texture {
	return &content.Texture{
		Texels: []uint8{
			255, 0, 0, 255, 0, 255, 0, 255,
			0, 0, 255, 255, 255, 255, 255, 255,
		},
		Width:  2,
		Height: 2,
		Format: content.TextureFormatRGBA8Unorm,
	}
}

func TestSamplerNearest(t *testing.T) {
	tex := testTexture()
	s := NewSampler()

	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, s.Sample(tex, mgl32.Vec2{0.25, 0.25}))
	assert.Equal(t, mgl32.Vec4{0, 1, 0, 1}, s.Sample(tex, mgl32.Vec2{0.75, 0.25}))
	assert.Equal(t, mgl32.Vec4{0, 0, 1, 1}, s.Sample(tex, mgl32.Vec2{0.25, 0.75}))
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, s.Sample(tex, mgl32.Vec2{0.75, 0.75}))
}

func TestSamplerClampOutOfRange(t *testing.T) {
	tex := testTexture()
	s := NewSampler()

	// Out-of-range coordinates are defined by the wrap policy, not an error.
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, s.Sample(tex, mgl32.Vec2{-3, -3}))
	assert.Equal(t, mgl32.Vec4{1, 1, 1, 1}, s.Sample(tex, mgl32.Vec2{4, 4}))
}

func TestSamplerRepeat(t *testing.T) {
	tex := testTexture()
	s := Sampler{Filter: FilterNearest, WrapU: WrapRepeat, WrapV: WrapRepeat}

	assert.Equal(t, s.Sample(tex, mgl32.Vec2{0.25, 0.25}), s.Sample(tex, mgl32.Vec2{1.25, 1.25}))
	assert.Equal(t, s.Sample(tex, mgl32.Vec2{0.75, 0.25}), s.Sample(tex, mgl32.Vec2{-0.25, 0.25}))
}

func TestSamplerLinearBlends(t *testing.T) {
	tex := testTexture()
	s := Sampler{Filter: FilterLinear, WrapU: WrapClamp, WrapV: WrapClamp}

	// Dead center of the 2x2 texture: the average of all four texels.
	got := s.Sample(tex, mgl32.Vec2{0.5, 0.5})
	assert.InDelta(t, 0.5, got[0], 0.01)
	assert.InDelta(t, 0.5, got[1], 0.01)
	assert.InDelta(t, 0.5, got[2], 0.01)
	assert.InDelta(t, 1.0, got[3], 0.01)

	// At a texel center the blend degenerates to that texel.
	got = s.Sample(tex, mgl32.Vec2{0.25, 0.25})
	assert.InDelta(t, 1.0, got[0], 0.01)
	assert.InDelta(t, 0.0, got[1], 0.01)
}

func TestSampleThenComposite(t *testing.T) {
	tex := testTexture()
	s := NewSampler()

	sample := s.Sample(tex, mgl32.Vec2{0.75, 0.75}) // white texel
	out := Composite(sample, mgl32.Vec4{0.5, 0.5, 0.5, 1})
	assert.Equal(t, mgl32.Vec4{0.5, 0.5, 0.5, 1}, out)
}
