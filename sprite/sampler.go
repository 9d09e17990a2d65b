package sprite

import (
	"math"

	"github.com/DarkKitsune/Fennec-Engine/content"
	"github.com/go-gl/mathgl/mgl32"
)

// FilterMode selects how a CPU sampler filters between texels.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

// WrapMode defines what out-of-range texture coordinates resolve to. The
// stages themselves never treat them as an error.
type WrapMode int

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
)

// Sampler is the CPU analogue of the render pipeline's texture sampler, used
// by the reference composite path and its tests.
type Sampler struct {
	Filter FilterMode
	WrapU  WrapMode
	WrapV  WrapMode
}

// NewSampler returns the default sampler policy: nearest filtering, clamped
// coordinates.
func NewSampler() Sampler {
	return Sampler{Filter: FilterNearest, WrapU: WrapClamp, WrapV: WrapClamp}
}

// Sample fetches the texture at a normalized coordinate under the sampler's
// filter and wrap policy.
func (s Sampler) Sample(tex *content.Texture, uv mgl32.Vec2) mgl32.Vec4 {
	w := int(tex.Width)
	h := int(tex.Height)
	if w == 0 || h == 0 {
		return mgl32.Vec4{}
	}

	if s.Filter == FilterNearest {
		x := wrapIndex(int(math.Floor(float64(uv[0])*float64(w))), w, s.WrapU)
		y := wrapIndex(int(math.Floor(float64(uv[1])*float64(h))), h, s.WrapV)
		return mgl32.Vec4(tex.TexelRGBA(x, y))
	}

	// Bilinear over texel centers.
	fx := float64(uv[0])*float64(w) - 0.5
	fy := float64(uv[1])*float64(h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := float32(fx - math.Floor(fx))
	ty := float32(fy - math.Floor(fy))

	fetch := func(x, y int) mgl32.Vec4 {
		return mgl32.Vec4(tex.TexelRGBA(
			wrapIndex(x, w, s.WrapU),
			wrapIndex(y, h, s.WrapV),
		))
	}

	top := lerp4(fetch(x0, y0), fetch(x0+1, y0), tx)
	bottom := lerp4(fetch(x0, y0+1), fetch(x0+1, y0+1), tx)
	return lerp4(top, bottom, ty)
}

func wrapIndex(i, n int, mode WrapMode) int {
	switch mode {
	case WrapRepeat:
		i %= n
		if i < 0 {
			i += n
		}
		return i
	case WrapMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // WrapClamp
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}
}

func lerp4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return mgl32.Vec4{
		mix(a[0], b[0], t),
		mix(a[1], b[1], t),
		mix(a[2], b[2], t),
		mix(a[3], b[3], t),
	}
}
