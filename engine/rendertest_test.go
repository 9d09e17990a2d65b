package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFlatColorIsVisible(t *testing.T) {
	// A zero alpha never writes under src-alpha blending; a black color is
	// indistinguishable from the default clear.
	assert.Greater(t, defaultFlatColor[3], float32(0))
	rgb := defaultFlatColor[0] + defaultFlatColor[1] + defaultFlatColor[2]
	assert.Greater(t, rgb, float32(0))
}

func TestRenderTestGeometryStaysInClipSpace(t *testing.T) {
	check := func(pos [2]float32) {
		assert.GreaterOrEqual(t, pos[0], float32(-1))
		assert.LessOrEqual(t, pos[0], float32(1))
		assert.GreaterOrEqual(t, pos[1], float32(-1))
		assert.LessOrEqual(t, pos[1], float32(1))
	}
	for _, v := range testQuad {
		check(v.Pos)
	}
	for _, v := range testTriangle {
		check(v.Pos)
	}
	for _, v := range testFlatTriangle {
		check(v.Pos)
	}
}
