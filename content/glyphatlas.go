package content

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// GlyphInfo describes one packed glyph: its atlas region and the metrics
// needed to lay it out as a sprite.
type GlyphInfo struct {
	Region  TileRegion
	Offset  [2]float32
	Advance float32
}

// GlyphAtlas packs the printable ASCII glyphs of a font face into a single
// atlas image, so text can be drawn as ordinary sprite instances.
type GlyphAtlas struct {
	AtlasImage *image.Alpha
	Glyphs     map[rune]GlyphInfo
	Face       font.Face
	Size       int
}

// LoadFontFace reads and parses an OpenType font file.
func LoadFontFace(fontPath string, fontSize float64) (font.Face, error) {
	fontBytes, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}

	f, err := opentype.Parse(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	return face, nil
}

// NewGlyphAtlas packs runes 32..126 of the face into an atlasSize x atlasSize
// alpha image. Glyphs that no longer fit are skipped.
func NewGlyphAtlas(face font.Face, atlasSize int) (*GlyphAtlas, error) {
	if atlasSize <= 0 {
		return nil, fmt.Errorf("invalid atlas size: %d", atlasSize)
	}

	atlas := image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize))
	glyphs := make(map[rune]GlyphInfo)

	x, y := 2, 2
	rowHeight := 0

	for r := rune(32); r < 127; r++ {
		bounds, mask, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			continue
		}

		w := mask.Bounds().Dx()
		h := mask.Bounds().Dy()

		if x+w >= atlasSize {
			x = 2
			y += rowHeight + 4
			rowHeight = 0
		}

		if y+h >= atlasSize {
			break
		}

		draw.Draw(atlas, image.Rect(x, y, x+w, y+h), mask, mask.Bounds().Min, draw.Src)

		glyphs[r] = GlyphInfo{
			Region: TileRegion{
				Left:   uint32(x),
				Top:    uint32(y),
				Width:  uint32(w),
				Height: uint32(h),
			},
			Offset:  [2]float32{float32(bounds.Min.X), float32(bounds.Min.Y)},
			Advance: float32(adv) / 64.0, // fixed 26.6 to float
		}

		x += w + 4
		if h > rowHeight {
			rowHeight = h
		}
	}

	return &GlyphAtlas{
		AtlasImage: atlas,
		Glyphs:     glyphs,
		Face:       face,
		Size:       atlasSize,
	}, nil
}

// Texture converts the alpha atlas into an RGBA8 texture with white color
// channels, so the sprite tint supplies the text color.
func (a *GlyphAtlas) Texture() Texture {
	size := a.Size
	texels := make([]uint8, size*size*4)
	for i, alpha := range a.AtlasImage.Pix {
		texels[i*4+0] = 0xff
		texels[i*4+1] = 0xff
		texels[i*4+2] = 0xff
		texels[i*4+3] = alpha
	}
	return Texture{
		Texels: texels,
		Width:  uint32(size),
		Height: uint32(size),
		Format: TextureFormatRGBA8Unorm,
	}
}

// LineHeight returns the face line height in pixels.
func (a *GlyphAtlas) LineHeight() float32 {
	return float32(a.Face.Metrics().Height.Ceil())
}

// MeasureText returns the width and height of a text block at the given scale.
func (a *GlyphAtlas) MeasureText(text string, scale float32) (float32, float32) {
	lineHeight := a.LineHeight()

	maxW := float32(0)
	currentW := float32(0)
	lines := 1

	for _, r := range text {
		if r == '\n' {
			if currentW > maxW {
				maxW = currentW
			}
			currentW = 0
			lines++
			continue
		}

		g, ok := a.Glyphs[r]
		if !ok {
			continue
		}
		currentW += g.Advance * scale
	}

	if currentW > maxW {
		maxW = currentW
	}

	return maxW, lineHeight * scale * float32(lines)
}
