package engine

import (
	"fmt"

	"github.com/DarkKitsune/Fennec-Engine/content"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
)

// GpuState holds the wgpu objects shared by every render pass.
type GpuState struct {
	Surface       *wgpu.Surface
	Adapter       *wgpu.Adapter
	Device        *wgpu.Device
	Queue         *wgpu.Queue
	SurfaceConfig *wgpu.SurfaceConfiguration
}

// NewGpuState creates the wgpu instance, surface, adapter, device and queue
// for a window, and configures the swapchain.
func NewGpuState(w *Window) (*GpuState, error) {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// wraps the GLFW window into a wgpu surface.
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(w.Glfw()))

	// finds a suitable GPU (discrete GPU preferred)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %w", err)
	}

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Main Device",
		RequiredFeatures: nil,
		RequiredLimits:   nil,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %w", err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(w.Width),
		Height:      uint32(w.Height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, &surfaceConfig)

	return &GpuState{
		Surface:       surface,
		Adapter:       adapter,
		Device:        device,
		Queue:         queue,
		SurfaceConfig: &surfaceConfig,
	}, nil
}

// Resize reconfigures the surface for a new framebuffer size.
func (g *GpuState) Resize(width, height int) {
	if width > 0 && height > 0 {
		g.SurfaceConfig.Width = uint32(width)
		g.SurfaceConfig.Height = uint32(height)
		g.Surface.Configure(g.Adapter, g.Device, g.SurfaceConfig)
	}
}

// CreateTexture uploads a decoded texture and returns a view of it.
func (g *GpuState) CreateTexture(tex *content.Texture) (*wgpu.TextureView, error) {
	textureExtent := wgpu.Extent3D{
		Width:              tex.Width,
		Height:             tex.Height,
		DepthOrArrayLayers: 1,
	}
	texture, err := g.Device.CreateTexture(&wgpu.TextureDescriptor{
		Size:          textureExtent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormat(tex.Format),
		Usage:         wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create texture: %w", err)
	}
	defer texture.Release()

	textureView, err := texture.CreateView(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create texture view: %w", err)
	}

	err = g.Queue.WriteTexture(
		texture.AsImageCopy(),
		tex.Texels,
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  tex.Width * 4,
			RowsPerImage: tex.Height,
		},
		&textureExtent,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upload texture: %w", err)
	}
	return textureView, nil
}

// CreateDefaultSampler returns the linear-filtering, clamping sampler used
// for atlas textures unless a pass configures its own.
func (g *GpuState) CreateDefaultSampler() (*wgpu.Sampler, error) {
	return g.Device.CreateSampler(&wgpu.SamplerDescriptor{
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		Compare:       wgpu.CompareFunctionUndefined,
		MaxAnisotropy: 1,
	})
}
