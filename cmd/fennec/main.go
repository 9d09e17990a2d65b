package main

import (
	"flag"
	"math"
	"runtime"

	"github.com/DarkKitsune/Fennec-Engine/content"
	"github.com/DarkKitsune/Fennec-Engine/engine"
	"github.com/DarkKitsune/Fennec-Engine/sprite"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	runtime.LockOSThread()
}

// checkerAtlas builds a 2x2-tile procedural atlas so the demo runs without
// image files on disk.
func checkerAtlas(store *content.Store, tile uint32) content.AssetId {
	size := tile * 2
	texels := make([]uint8, size*size*4)
	colors := [4][4]uint8{
		{0xff, 0x5d, 0x3a, 0xff}, // fox orange
		{0xf2, 0xe9, 0xdc, 0xff},
		{0x3a, 0x6e, 0xff, 0xff},
		{0x2e, 0x2e, 0x38, 0xff},
	}
	for y := uint32(0); y < size; y++ {
		for x := uint32(0); x < size; x++ {
			c := colors[(y/tile)*2+(x/tile)]
			i := (y*size + x) * 4
			copy(texels[i:i+4], c[:])
		}
	}
	return store.CreateTexture(texels, size, size, content.TextureFormatRGBA8Unorm)
}

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	showTest := flag.Bool("rendertest", false, "Draw the render test variants behind the sprites")
	flag.Parse()

	e, err := engine.New(engine.Config{
		Width:          1280,
		Height:         720,
		Title:          "Fennec",
		Debug:          *debug,
		ShowRenderTest: *showTest,
	})
	if err != nil {
		panic(err)
	}
	defer e.Destroy()

	store := content.NewStore()
	atlasId := checkerAtlas(store, 64)
	atlas, _ := store.Texture(atlasId)

	view, err := e.Gpu.CreateTexture(&atlas)
	if err != nil {
		panic(err)
	}
	sampler, err := e.Gpu.CreateDefaultSampler()
	if err != nil {
		panic(err)
	}
	if err := e.Sprites.SetAtlas(view, sampler); err != nil {
		panic(err)
	}
	if e.Test != nil {
		if err := e.Test.SetTexture(view, sampler); err != nil {
			panic(err)
		}
		e.Test.SetFlatColor(e.Gpu.Queue, [4]float32{0.2, 0.8, 0.4, 1})
	}

	// One sprite per atlas tile, drifting right at different speeds.
	regions := []content.TileRegion{
		{Left: 0, Top: 0, Width: 64, Height: 64, CenterX: 32, CenterY: 32},
		{Left: 64, Top: 0, Width: 64, Height: 64, CenterX: 32, CenterY: 32},
		{Left: 0, Top: 64, Width: 64, Height: 64, CenterX: 32, CenterY: 32},
		{Left: 64, Top: 64, Width: 64, Height: 64, CenterX: 32, CenterY: 32},
	}
	var spinners []sprite.Handle
	for i, region := range regions {
		inst := sprite.NewInstance()
		inst.Translation = mgl32.Vec2{100 + float32(i)*200, 360}
		inst.Scale = mgl32.Vec2{96, 96}
		inst.Velocity = mgl32.Vec2{10 * float32(i), 0}
		inst.SpriteLT = region.LT(atlas.Width, atlas.Height)
		inst.SpriteRB = region.RB(atlas.Width, atlas.Height)
		inst.SpriteCenter = region.Center()
		handle, err := e.Layer.Create(inst)
		if err != nil {
			panic(err)
		}
		spinners = append(spinners, handle)
	}

	err = e.Run(func(e *engine.Engine) {
		// Spin each sprite about its pivot; motion comes from the velocity
		// extrapolation in the vertex stage, not from per-frame rewrites.
		angle := e.Clock.Elapsed()
		for i, handle := range spinners {
			if inst, ok := e.Layer.Get(handle); ok {
				inst.Rotation = mgl32.HomogRotate3DZ(angle * (1 + 0.25*float32(i)))
				inst.ColorBlend[3] = 0.75 + 0.25*float32(math.Sin(float64(angle)))
			}
		}
	})
	if err != nil {
		panic(err)
	}
}
