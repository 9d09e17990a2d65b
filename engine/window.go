package engine

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window wraps the glfw window and its event pump.
type Window struct {
	windowGlfw *glfw.Window
	Width      int
	Height     int
	Title      string
}

// NewWindow initializes glfw and opens a window without a client API; the
// surface is driven through wgpu instead. Must be called from the main
// goroutine.
func NewWindow(width, height int, title string) (*Window, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	return &Window{
		windowGlfw: win,
		Width:      width,
		Height:     height,
		Title:      title,
	}, nil
}

// Glfw exposes the underlying glfw window for surface creation and callbacks.
func (w *Window) Glfw() *glfw.Window {
	return w.windowGlfw
}

func (w *Window) ShouldClose() bool {
	return w.windowGlfw.ShouldClose()
}

func (w *Window) Poll() {
	glfw.PollEvents()
}

// SizePoints returns the client size in screen points.
func (w *Window) SizePoints() (int, int) {
	return w.windowGlfw.GetSize()
}

// SizePixels returns the client size in pixels.
func (w *Window) SizePixels() (int, int) {
	return w.windowGlfw.GetFramebufferSize()
}

func (w *Window) Destroy() {
	w.windowGlfw.Destroy()
	glfw.Terminate()
}
