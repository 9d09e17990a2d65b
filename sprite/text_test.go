package sprite

import (
	"testing"

	"github.com/DarkKitsune/Fennec-Engine/content"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func testAtlas(t *testing.T) *content.GlyphAtlas {
	t.Helper()
	atlas, err := content.NewGlyphAtlas(basicfont.Face7x13, 256)
	require.NoError(t, err)
	return atlas
}

func TestBuildTextAdvancesPerGlyph(t *testing.T) {
	atlas := testAtlas(t)

	insts := BuildText(atlas, "ab", mgl32.Vec2{10, 20}, 1, mgl32.Vec4{1, 1, 1, 1})
	require.Len(t, insts, 2)

	a := atlas.Glyphs['a']
	b := atlas.Glyphs['b']
	expected := a.Advance + b.Offset[0] - a.Offset[0]
	assert.InDelta(t, expected, insts[1].Translation[0]-insts[0].Translation[0], 1e-4)
	assert.Equal(t, insts[0].Translation[1], insts[1].Translation[1], "one line, one baseline")
}

func TestBuildTextNewlineStartsNewLine(t *testing.T) {
	atlas := testAtlas(t)

	insts := BuildText(atlas, "a\na", mgl32.Vec2{5, 5}, 1, mgl32.Vec4{1, 1, 1, 1})
	require.Len(t, insts, 2)

	assert.Equal(t, insts[0].Translation[0], insts[1].Translation[0], "newline resets the pen x")
	assert.InDelta(t, atlas.LineHeight(), insts[1].Translation[1]-insts[0].Translation[1], 1e-4)
}

func TestBuildTextInstancesTileTheAtlas(t *testing.T) {
	atlas := testAtlas(t)

	insts := BuildText(atlas, "A", mgl32.Vec2{}, 1, mgl32.Vec4{1, 0, 0, 1})
	require.Len(t, insts, 1)

	g := atlas.Glyphs['A']
	size := uint32(atlas.Size)
	assert.Equal(t, g.Region.LT(size, size), insts[0].SpriteLT)
	assert.Equal(t, g.Region.RB(size, size), insts[0].SpriteRB)
	assert.Equal(t, mgl32.Vec2{float32(g.Region.Width), float32(g.Region.Height)}, insts[0].Scale)
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, insts[0].ColorBlend)
}

func TestBuildTextScale(t *testing.T) {
	atlas := testAtlas(t)

	one := BuildText(atlas, "a", mgl32.Vec2{}, 1, mgl32.Vec4{1, 1, 1, 1})
	two := BuildText(atlas, "a", mgl32.Vec2{}, 2, mgl32.Vec4{1, 1, 1, 1})
	require.Len(t, one, 1)
	require.Len(t, two, 1)
	assert.Equal(t, one[0].Scale.Mul(2), two[0].Scale)
}

func TestBuildTextSkipsUnknownRunes(t *testing.T) {
	atlas := testAtlas(t)

	insts := BuildText(atlas, "aéa", mgl32.Vec2{}, 1, mgl32.Vec4{1, 1, 1, 1})
	assert.Len(t, insts, 2, "runes outside the packed range draw nothing")
}
