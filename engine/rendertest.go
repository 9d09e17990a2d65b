package engine

import (
	"unsafe"

	"github.com/DarkKitsune/Fennec-Engine/shaders"
	"github.com/cogentcore/webgpu/wgpu"
)

// TexturedVertex matches the WGSL VertexInput in quad.wgsl.
type TexturedVertex struct {
	Pos [2]float32
	UV  [2]float32
}

// ColorVertex matches the WGSL VertexInput in triangle.wgsl.
type ColorVertex struct {
	Pos   [2]float32
	Color [4]float32
}

// FlatVertex matches the WGSL VertexInput in flat.wgsl.
type FlatVertex struct {
	Pos [2]float32
}

// defaultFlatColor keeps the flat variant visible before a caller picks its
// own color; a zero color would never write under src-alpha blending.
var defaultFlatColor = [4]float32{0.9, 0.4, 0.1, 1}

// Fallback geometry in clip space. Fixed tables, initialized once.
var (
	testQuad = [4]TexturedVertex{
		{Pos: [2]float32{-0.9, -0.9}, UV: [2]float32{0, 1}},
		{Pos: [2]float32{0.9, -0.9}, UV: [2]float32{1, 1}},
		{Pos: [2]float32{-0.9, 0.9}, UV: [2]float32{0, 0}},
		{Pos: [2]float32{0.9, 0.9}, UV: [2]float32{1, 0}},
	}

	testTriangle = [3]ColorVertex{
		{Pos: [2]float32{0.0, 0.5}, Color: [4]float32{1, 0, 0, 1}},
		{Pos: [2]float32{-0.5, -0.5}, Color: [4]float32{0, 1, 0, 1}},
		{Pos: [2]float32{0.5, -0.5}, Color: [4]float32{0, 0, 1, 1}},
	}

	testFlatTriangle = [3]FlatVertex{
		{Pos: [2]float32{0.0, 0.25}},
		{Pos: [2]float32{-0.25, -0.25}},
		{Pos: [2]float32{0.25, -0.25}},
	}
)

// RenderTest draws the non-instanced pipeline variants: a plain textured
// quad, a vertex-colored triangle and a uniform-colored triangle. Each writes
// exactly one RGBA value per covered pixel, same output contract as the
// sprite pipeline.
type RenderTest struct {
	QuadPipeline     *wgpu.RenderPipeline
	TrianglePipeline *wgpu.RenderPipeline
	FlatPipeline     *wgpu.RenderPipeline
	QuadBuffer       *wgpu.Buffer
	TriangleBuffer   *wgpu.Buffer
	FlatBuffer       *wgpu.Buffer
	ColorBuffer      *wgpu.Buffer
	QuadBG           *wgpu.BindGroup
	FlatBG           *wgpu.BindGroup
	Device           *wgpu.Device
}

func NewRenderTest(device *wgpu.Device, format wgpu.TextureFormat) (*RenderTest, error) {
	rt := &RenderTest{Device: device}

	var err error
	rt.QuadPipeline, err = createTestPipeline(device, format, "RenderTestQuad", shaders.QuadWGSL,
		wgpu.PrimitiveTopologyTriangleStrip,
		wgpu.VertexBufferLayout{
			ArrayStride: uint64(unsafe.Sizeof(TexturedVertex{})),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x2, Offset: uint64(unsafe.Offsetof(TexturedVertex{}.UV)), ShaderLocation: 1},
			},
		})
	if err != nil {
		return nil, err
	}

	rt.TrianglePipeline, err = createTestPipeline(device, format, "RenderTestTriangle", shaders.TriangleWGSL,
		wgpu.PrimitiveTopologyTriangleList,
		wgpu.VertexBufferLayout{
			ArrayStride: uint64(unsafe.Sizeof(ColorVertex{})),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: wgpu.VertexFormatFloat32x4, Offset: uint64(unsafe.Offsetof(ColorVertex{}.Color)), ShaderLocation: 1},
			},
		})
	if err != nil {
		return nil, err
	}

	rt.FlatPipeline, err = createTestPipeline(device, format, "RenderTestFlat", shaders.FlatWGSL,
		wgpu.PrimitiveTopologyTriangleList,
		wgpu.VertexBufferLayout{
			ArrayStride: uint64(unsafe.Sizeof(FlatVertex{})),
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			},
		})
	if err != nil {
		return nil, err
	}

	quad := testQuad
	rt.QuadBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "RenderTestQuadVertices",
		Contents: unsafe.Slice((*byte)(unsafe.Pointer(&quad[0])), int(unsafe.Sizeof(quad))),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}

	tri := testTriangle
	rt.TriangleBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "RenderTestTriangleVertices",
		Contents: unsafe.Slice((*byte)(unsafe.Pointer(&tri[0])), int(unsafe.Sizeof(tri))),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}

	flat := testFlatTriangle
	rt.FlatBuffer, err = device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "RenderTestFlatVertices",
		Contents: unsafe.Slice((*byte)(unsafe.Pointer(&flat[0])), int(unsafe.Sizeof(flat))),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, err
	}

	rt.ColorBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "RenderTestFlatColor",
		Size:  16,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	rt.SetFlatColor(device.GetQueue(), defaultFlatColor)

	flatLayout := rt.FlatPipeline.GetBindGroupLayout(0)
	defer flatLayout.Release()
	rt.FlatBG, err = device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "RenderTestFlatBG",
		Layout: flatLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  rt.ColorBuffer,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return rt, nil
}

func createTestPipeline(device *wgpu.Device, format wgpu.TextureFormat, name string, code string, topology wgpu.PrimitiveTopology, layout wgpu.VertexBufferLayout) (*wgpu.RenderPipeline, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: code},
	})
	if err != nil {
		return nil, err
	}
	defer shaderModule.Release()

	return device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{layout},
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
			Topology:  topology,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
}

// SetTexture binds the texture sampled by the quad variant.
func (rt *RenderTest) SetTexture(view *wgpu.TextureView, sampler *wgpu.Sampler) error {
	quadLayout := rt.QuadPipeline.GetBindGroupLayout(0)
	defer quadLayout.Release()

	bg, err := rt.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "RenderTestQuadBG",
		Layout: quadLayout,
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
	if rt.QuadBG != nil {
		rt.QuadBG.Release()
	}
	rt.QuadBG = bg
	return nil
}

// SetFlatColor uploads the uniform color of the flat variant.
func (rt *RenderTest) SetFlatColor(queue *wgpu.Queue, color [4]float32) {
	queue.WriteBuffer(rt.ColorBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&color)), int(unsafe.Sizeof(color))))
}

// Draw records all three variant draws into an open render pass.
func (rt *RenderTest) Draw(pass *wgpu.RenderPassEncoder) {
	if rt.QuadBG != nil {
		pass.SetPipeline(rt.QuadPipeline)
		pass.SetBindGroup(0, rt.QuadBG, nil)
		pass.SetVertexBuffer(0, rt.QuadBuffer, 0, rt.QuadBuffer.GetSize())
		pass.Draw(4, 1, 0, 0)
	}

	pass.SetPipeline(rt.TrianglePipeline)
	pass.SetVertexBuffer(0, rt.TriangleBuffer, 0, rt.TriangleBuffer.GetSize())
	pass.Draw(3, 1, 0, 0)

	pass.SetPipeline(rt.FlatPipeline)
	pass.SetBindGroup(0, rt.FlatBG, nil)
	pass.SetVertexBuffer(0, rt.FlatBuffer, 0, rt.FlatBuffer.GetSize())
	pass.Draw(3, 1, 0, 0)
}
