package content

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/google/uuid"
)

type AssetId string

type TextureFormat uint32

const (
	TextureFormatR8Uint     TextureFormat = 0x00000003
	TextureFormatRGBA8Unorm TextureFormat = 0x00000012
	TextureFormatRGBA8Uint  TextureFormat = 0x00000015
)

// Texture is a decoded image in upload-ready texel form.
type Texture struct {
	Texels []uint8
	Width  uint32
	Height uint32
	Format TextureFormat
}

// TexelRGBA returns the texel at (x, y) as normalized RGBA. Assumes an
// RGBA8-class format; out-of-range coordinates are the caller's problem and
// must be wrapped beforehand.
func (t *Texture) TexelRGBA(x, y int) [4]float32 {
	i := (y*int(t.Width) + x) * 4
	return [4]float32{
		float32(t.Texels[i+0]) / 255.0,
		float32(t.Texels[i+1]) / 255.0,
		float32(t.Texels[i+2]) / 255.0,
		float32(t.Texels[i+3]) / 255.0,
	}
}

// Store holds decoded textures behind generated asset ids.
type Store struct {
	handles  map[AssetId]Handle[Texture]
	textures *Cache[Texture]
}

func NewStore() *Store {
	return &Store{
		handles:  make(map[AssetId]Handle[Texture]),
		textures: NewCache[Texture](),
	}
}

// CreateTexture registers an already-decoded texture.
func (s *Store) CreateTexture(texels []uint8, width, height uint32, format TextureFormat) AssetId {
	id := makeAssetId()
	s.handles[id] = s.textures.Insert(Texture{
		Texels: texels,
		Width:  width,
		Height: height,
		Format: format,
	})
	return id
}

// LoadTexture decodes a PNG file into an RGBA8 texture.
func (s *Store) LoadTexture(filename string) (AssetId, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode texture %q: %w", filename, err)
	}

	bounds := img.Bounds()

	rgbaImg, ok := img.(*image.RGBA)
	if !ok {
		rgbaImg = image.NewRGBA(bounds)
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				rgbaImg.Set(x, y, img.At(x, y))
			}
		}
	}

	return s.CreateTexture(
		rgbaImg.Pix,
		uint32(bounds.Dx()),
		uint32(bounds.Dy()),
		TextureFormatRGBA8Unorm,
	), nil
}

// LoadImage loads a named PNG from the image content root.
func (s *Store) LoadImage(name string) (AssetId, error) {
	return s.LoadTexture(Path(name, Image))
}

// Texture looks up a texture by asset id.
func (s *Store) Texture(id AssetId) (Texture, bool) {
	handle, ok := s.handles[id]
	if !ok {
		return Texture{}, false
	}
	return s.textures.Get(handle)
}

// Remove drops a texture from the store.
func (s *Store) Remove(id AssetId) bool {
	handle, ok := s.handles[id]
	if !ok {
		return false
	}
	delete(s.handles, id)
	return s.textures.Remove(handle)
}

func (s *Store) Len() int {
	return s.textures.Len()
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
