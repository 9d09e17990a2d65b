package sprite

import (
	"github.com/DarkKitsune/Fennec-Engine/content"
	"github.com/go-gl/mathgl/mgl32"
)

// BuildText lays a string out as sprite instances over a glyph atlas, one
// instance per visible glyph. The origin is the top-left of the text block in
// world units; the instances tile the atlas regions recorded when the atlas
// was packed, so they draw with the same pipeline as any other sprite.
func BuildText(atlas *content.GlyphAtlas, text string, origin mgl32.Vec2, scale float32, color mgl32.Vec4) []Instance {
	instances := make([]Instance, 0, len(text))

	atlasSize := uint32(atlas.Size)
	ascent := float32(atlas.Face.Metrics().Ascent.Ceil())
	lineHeight := atlas.LineHeight()

	posX := origin[0]
	posY := origin[1] + ascent*scale

	for _, r := range text {
		if r == '\n' {
			posX = origin[0]
			posY += lineHeight * scale
			continue
		}

		g, ok := atlas.Glyphs[r]
		if !ok {
			continue
		}

		if g.Region.Width > 0 && g.Region.Height > 0 {
			inst := NewInstance()
			inst.Translation = mgl32.Vec2{
				posX + g.Offset[0]*scale,
				posY + g.Offset[1]*scale,
			}
			inst.Scale = mgl32.Vec2{
				float32(g.Region.Width) * scale,
				float32(g.Region.Height) * scale,
			}
			inst.SpriteLT = g.Region.LT(atlasSize, atlasSize)
			inst.SpriteRB = g.Region.RB(atlasSize, atlasSize)
			inst.SpriteCenter = g.Region.Center()
			inst.ColorBlend = color
			instances = append(instances, inst)
		}

		posX += g.Advance * scale
	}

	return instances
}
