package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestGlyphAtlasPacksPrintableASCII(t *testing.T) {
	atlas, err := NewGlyphAtlas(basicfont.Face7x13, 256)
	require.NoError(t, err)

	g, ok := atlas.Glyphs['A']
	require.True(t, ok)
	assert.Greater(t, g.Region.Width, uint32(0))
	assert.Greater(t, g.Advance, float32(0))

	// Regions stay inside the atlas.
	for r, info := range atlas.Glyphs {
		assert.LessOrEqual(t, info.Region.Left+info.Region.Width, uint32(256), "glyph %q", r)
		assert.LessOrEqual(t, info.Region.Top+info.Region.Height, uint32(256), "glyph %q", r)
	}
}

func TestGlyphAtlasRegionsDoNotOverlap(t *testing.T) {
	atlas, err := NewGlyphAtlas(basicfont.Face7x13, 256)
	require.NoError(t, err)

	type rect struct{ x0, y0, x1, y1 uint32 }
	var rects []rect
	for _, info := range atlas.Glyphs {
		if info.Region.Width == 0 || info.Region.Height == 0 {
			continue
		}
		rects = append(rects, rect{
			info.Region.Left, info.Region.Top,
			info.Region.Left + info.Region.Width, info.Region.Top + info.Region.Height,
		})
	}
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			overlaps := a.x0 < b.x1 && b.x0 < a.x1 && a.y0 < b.y1 && b.y0 < a.y1
			assert.False(t, overlaps, "glyph regions %v and %v overlap", a, b)
		}
	}
}

func TestGlyphAtlasTexture(t *testing.T) {
	atlas, err := NewGlyphAtlas(basicfont.Face7x13, 128)
	require.NoError(t, err)

	tex := atlas.Texture()
	assert.Equal(t, uint32(128), tex.Width)
	assert.Equal(t, uint32(128), tex.Height)
	assert.Equal(t, TextureFormatRGBA8Unorm, tex.Format)
	assert.Len(t, tex.Texels, 128*128*4)

	// Color channels are white everywhere; coverage lives in alpha.
	g := atlas.Glyphs['A']
	inside := tex.TexelRGBA(int(g.Region.Left), int(g.Region.Top))
	assert.Equal(t, float32(1), inside[0])
	assert.Equal(t, float32(1), inside[1])
	assert.Equal(t, float32(1), inside[2])
}

func TestGlyphAtlasMeasureText(t *testing.T) {
	atlas, err := NewGlyphAtlas(basicfont.Face7x13, 256)
	require.NoError(t, err)

	w1, h1 := atlas.MeasureText("hi", 1)
	w2, h2 := atlas.MeasureText("hi\nthere", 1)
	assert.Greater(t, w1, float32(0))
	assert.Greater(t, w2, w1)
	assert.Equal(t, h1*2, h2)

	assert.Greater(t, atlas.LineHeight(), float32(0))
}

func TestGlyphAtlasInvalidSize(t *testing.T) {
	_, err := NewGlyphAtlas(basicfont.Face7x13, 0)
	assert.Error(t, err)
}
