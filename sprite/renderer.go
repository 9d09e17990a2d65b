package sprite

import (
	"fmt"
	"unsafe"

	"github.com/DarkKitsune/Fennec-Engine/shaders"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraUniform and timerUniform match the WGSL uniform blocks in sprite.wgsl.
// The timer scalar is padded to the 16-byte uniform stride.
type cameraUniform struct {
	Proj mgl32.Mat4
}

type timerUniform struct {
	Elapsed float32
	_       [3]float32
}

// Renderer draws a sprite batch with the instanced sprite pipeline. The quad
// vertex buffer is written once; the instance buffer grows on demand and is
// rewritten from a Layer snapshot each frame, never during a draw.
type Renderer struct {
	Pipeline       *wgpu.RenderPipeline
	QuadBuffer     *wgpu.Buffer
	CameraBuffer   *wgpu.Buffer
	TimerBuffer    *wgpu.Buffer
	UniformBG      *wgpu.BindGroup
	AtlasBG        *wgpu.BindGroup
	InstanceBuffer *wgpu.Buffer
	InstanceCap    uint32
	InstanceCount  uint32
	Device         *wgpu.Device

	instances []Instance
}

func NewRenderer(device *wgpu.Device, format wgpu.TextureFormat) (*Renderer, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "SpriteShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.SpriteWGSL},
	})
	if err != nil {
		return nil, err
	}
	defer shaderModule.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "SpritePipeline",
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(unsafe.Sizeof(QuadVertex{})),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(QuadVertex{}.Pos)),
							ShaderLocation: 0,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(QuadVertex{}.UV)),
							ShaderLocation: 1,
						},
					},
				},
				{
					ArrayStride: uint64(InstanceStride),
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Translation)),
							ShaderLocation: 2,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Scale)),
							ShaderLocation: 3,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Velocity)),
							ShaderLocation: 4,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Instance{}.SpriteLT)),
							ShaderLocation: 5,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Instance{}.SpriteRB)),
							ShaderLocation: 6,
						},
						{
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(unsafe.Offsetof(Instance{}.SpriteCenter)),
							ShaderLocation: 7,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(Instance{}.ColorBlend)),
							ShaderLocation: 8,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Rotation)),
							ShaderLocation: 9,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Rotation)) + 16,
							ShaderLocation: 10,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Rotation)) + 32,
							ShaderLocation: 11,
						},
						{
							Format:         wgpu.VertexFormatFloat32x4,
							Offset:         uint64(unsafe.Offsetof(Instance{}.Rotation)) + 48,
							ShaderLocation: 12,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleStrip,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		Pipeline: pipeline,
		Device:   device,
	}

	quad := UnitQuad
	r.QuadBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "SpriteUnitQuad",
		Contents: unsafe.Slice((*byte)(unsafe.Pointer(&quad[0])), int(unsafe.Sizeof(quad))),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}

	r.CameraBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "SpriteCameraUniform",
		Size:  uint64(unsafe.Sizeof(cameraUniform{})),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	r.TimerBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "SpriteTimerUniform",
		Size:  uint64(unsafe.Sizeof(timerUniform{})),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}

	uniformLayout := pipeline.GetBindGroupLayout(0)
	defer uniformLayout.Release()
	r.UniformBG, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "SpriteUniformBG",
		Layout: uniformLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.CameraBuffer,
				Size:    wgpu.WholeSize,
			},
			{
				Binding: 1,
				Buffer:  r.TimerBuffer,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// SetAtlas binds the atlas texture and sampler the batch samples from.
func (r *Renderer) SetAtlas(view *wgpu.TextureView, sampler *wgpu.Sampler) error {
	atlasLayout := r.Pipeline.GetBindGroupLayout(1)
	defer atlasLayout.Release()

	bg, err := r.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "SpriteAtlasBG",
		Layout: atlasLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding:     0,
				TextureView: view,
				Size:        wgpu.WholeSize,
			},
			{
				Binding: 1,
				Sampler: sampler,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return err
	}
	if r.AtlasBG != nil {
		r.AtlasBG.Release()
	}
	r.AtlasBG = bg
	return nil
}

// SetCamera uploads the projection uniform. Call between draws only.
func (r *Renderer) SetCamera(queue *wgpu.Queue, camera Camera) {
	u := cameraUniform{Proj: camera.Projection()}
	queue.WriteBuffer(r.CameraBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&u)), int(unsafe.Sizeof(u))))
}

// SetElapsed uploads the elapsed-time uniform. Must be non-decreasing across
// frames for velocity extrapolation to move sprites forward.
func (r *Renderer) SetElapsed(queue *wgpu.Queue, seconds float32) {
	u := timerUniform{Elapsed: seconds}
	queue.WriteBuffer(r.TimerBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&u)), int(unsafe.Sizeof(u))))
}

// Update snapshots the layer and rewrites the instance buffer, growing it
// when the batch outgrows its capacity. On error the batch is empty and the
// next Draw is a no-op.
func (r *Renderer) Update(queue *wgpu.Queue, layer *Layer) error {
	r.instances = layer.Snapshot(r.instances[:0])
	r.InstanceCount = uint32(len(r.instances))
	if r.InstanceCount == 0 {
		return nil
	}

	sizeBytes := uint64(len(r.instances)) * uint64(InstanceStride)
	if r.InstanceBuffer == nil || r.InstanceCap < r.InstanceCount {
		if r.InstanceBuffer != nil {
			r.InstanceBuffer.Release()
			r.InstanceBuffer = nil
		}
		r.InstanceCap = r.InstanceCount + 128 // Margin
		buffer, err := r.Device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "SpriteInstanceBuffer",
			Size:  uint64(r.InstanceCap) * uint64(InstanceStride),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			r.InstanceCap = 0
			r.InstanceCount = 0
			return fmt.Errorf("failed to grow instance buffer: %w", err)
		}
		r.InstanceBuffer = buffer
	}

	return queue.WriteBuffer(r.InstanceBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&r.instances[0])), sizeBytes))
}

// Draw records the instanced sprite draw into an open render pass.
func (r *Renderer) Draw(pass *wgpu.RenderPassEncoder) {
	if r.InstanceCount == 0 || r.InstanceBuffer == nil || r.AtlasBG == nil {
		return
	}

	pass.SetPipeline(r.Pipeline)
	pass.SetBindGroup(0, r.UniformBG, nil)
	pass.SetBindGroup(1, r.AtlasBG, nil)
	pass.SetVertexBuffer(0, r.QuadBuffer, 0, r.QuadBuffer.GetSize())
	pass.SetVertexBuffer(1, r.InstanceBuffer, 0, r.InstanceBuffer.GetSize())
	pass.Draw(4, r.InstanceCount, 0, 0)
}
