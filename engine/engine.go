package engine

import (
	"fmt"

	"github.com/DarkKitsune/Fennec-Engine/sprite"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Config configures a new Engine.
type Config struct {
	Width  int
	Height int
	Title  string
	Debug  bool

	// ShowRenderTest draws the non-instanced variant pipelines behind the
	// sprite layer.
	ShowRenderTest bool
}

// Engine ties the window, GPU state, clock and render passes into a frame
// loop. Uniforms are written at the top of a frame, before the draw is
// encoded; nothing touches them mid-draw.
type Engine struct {
	Window  *Window
	Gpu     *GpuState
	Clock   *Clock
	Log     Logger
	Sprites *sprite.Renderer
	Layer   *sprite.Layer
	Camera  sprite.Camera
	Test    *RenderTest

	showRenderTest bool
	ClearColor     wgpu.Color
}

// New opens a window and builds the render passes.
func New(cfg Config) (*Engine, error) {
	logger := NewDefaultLogger("fennec", cfg.Debug)

	window, err := NewWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return nil, err
	}

	gpu, err := NewGpuState(window)
	if err != nil {
		window.Destroy()
		return nil, err
	}
	logger.Infof("surface configured: %dx%d, format %v", cfg.Width, cfg.Height, gpu.SurfaceConfig.Format)

	sprites, err := sprite.NewRenderer(gpu.Device, gpu.SurfaceConfig.Format)
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("failed to create sprite renderer: %w", err)
	}

	var test *RenderTest
	if cfg.ShowRenderTest {
		test, err = NewRenderTest(gpu.Device, gpu.SurfaceConfig.Format)
		if err != nil {
			window.Destroy()
			return nil, fmt.Errorf("failed to create render test: %w", err)
		}
	}

	e := &Engine{
		Window:         window,
		Gpu:            gpu,
		Clock:          NewClock(),
		Log:            logger,
		Sprites:        sprites,
		Layer:          sprite.NewLayer(),
		Camera:         sprite.NewCamera(float32(cfg.Width), float32(cfg.Height)),
		Test:           test,
		showRenderTest: cfg.ShowRenderTest,
		ClearColor:     wgpu.Color{R: 0, G: 0, B: 0, A: 1},
	}

	window.Glfw().SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		e.Gpu.Resize(width, height)
		e.Camera = sprite.NewCamera(float32(width), float32(height))
	})

	return e, nil
}

// Run drives the frame loop until the window closes. The update callback, if
// any, runs once per frame before the draw is encoded and is the only place
// the layer and camera should change.
func (e *Engine) Run(update func(*Engine)) error {
	for !e.Window.ShouldClose() {
		e.Window.Poll()
		e.Clock.Tick()

		if update != nil {
			update(e)
		}

		// Uniforms and instances are written here, strictly between draws.
		e.Sprites.SetCamera(e.Gpu.Queue, e.Camera)
		e.Sprites.SetElapsed(e.Gpu.Queue, e.Clock.Elapsed())
		if err := e.Sprites.Update(e.Gpu.Queue, e.Layer); err != nil {
			e.Log.Errorf("instance upload failed: %v", err)
			continue
		}

		if err := e.renderFrame(); err != nil {
			e.Log.Errorf("frame dropped: %v", err)
		}
	}
	return nil
}

func (e *Engine) renderFrame() error {
	nextTexture, err := e.Gpu.Surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %w", err)
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		return fmt.Errorf("failed to create surface view: %w", err)
	}
	defer view.Release()

	encoder, err := e.Gpu.Device.CreateCommandEncoder(nil)
	if err != nil {
		return fmt.Errorf("failed to create command encoder: %w", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: e.ClearColor,
		}},
	})

	if e.showRenderTest && e.Test != nil {
		e.Test.Draw(pass)
	}
	e.Sprites.Draw(pass)

	if err := pass.End(); err != nil {
		return fmt.Errorf("render pass failed: %w", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return fmt.Errorf("failed to finish encoder: %w", err)
	}
	e.Gpu.Queue.Submit(cmd)
	e.Gpu.Surface.Present()
	return nil
}

// Destroy tears the engine down.
func (e *Engine) Destroy() {
	e.Window.Destroy()
}
