//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/clickshapes/render"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// sampleCount is the MSAA sample count of the render target.
const sampleCount = 4

// uniformSize is the byte size of the viewport uniform: vec2 resolution
// plus padding to 16 bytes.
const uniformSize = 16

// pipelines holds the shader and one render pipeline per topology.
type pipelines struct {
	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout

	sprite   hal.RenderPipeline
	line     hal.RenderPipeline
	triangle hal.RenderPipeline
}

func (p *pipelines) ready() bool {
	return p.sprite != nil && p.line != nil && p.triangle != nil
}

// forTopology returns the pipeline that draws a topology.
func (p *pipelines) forTopology(t render.Topology) hal.RenderPipeline {
	switch t {
	case render.TopologyLineList:
		return p.line
	case render.TopologyTriangleList:
		return p.triangle
	default:
		return p.sprite
	}
}

// ensure compiles the shader and builds all pipelines on first use.
func (p *pipelines) ensure(device hal.Device) error {
	if p.ready() {
		return nil
	}
	if err := p.create(device); err != nil {
		p.destroy(device)
		return err
	}
	return nil
}

func (p *pipelines) create(device hal.Device) error {
	if shapesShaderSource == "" {
		return fmt.Errorf("%w: shader source is empty", render.ErrShaderCompile)
	}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "shapes_shader",
		Source: hal.ShaderSource{WGSL: shapesShaderSource},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", render.ErrShaderCompile, err)
	}
	p.shader = shader

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "shapes_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: uniform layout: %w", render.ErrProgramLink, err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "shapes_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("%w: pipeline layout: %w", render.ErrProgramLink, err)
	}
	p.pipeLayout = pipeLayout

	// Sprites read one vertex record per instance and expand it to a quad.
	if p.sprite, err = p.createPipeline(device, "shapes_sprite_pipeline", entrySprite,
		gputypes.PrimitiveTopologyTriangleList, gputypes.VertexStepModeInstance); err != nil {
		return err
	}
	if p.line, err = p.createPipeline(device, "shapes_line_pipeline", entryVertex,
		gputypes.PrimitiveTopologyLineList, gputypes.VertexStepModeVertex); err != nil {
		return err
	}
	if p.triangle, err = p.createPipeline(device, "shapes_triangle_pipeline", entryVertex,
		gputypes.PrimitiveTopologyTriangleList, gputypes.VertexStepModeVertex); err != nil {
		return err
	}
	return nil
}

func (p *pipelines) createPipeline(
	device hal.Device, label, entry string,
	topology gputypes.PrimitiveTopology, stepMode gputypes.VertexStepMode,
) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: entry,
			Buffers:    []gputypes.VertexBufferLayout{render.VertexLayout(stepMode)},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: entryFragment,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    render.SurfaceFormat,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: topology,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: sampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", render.ErrProgramLink, label, err)
	}
	return pipeline, nil
}

// destroy releases pipeline resources in reverse creation order.
func (p *pipelines) destroy(device hal.Device) {
	for _, rp := range []*hal.RenderPipeline{&p.triangle, &p.line, &p.sprite} {
		if *rp != nil {
			device.DestroyRenderPipeline(*rp)
			*rp = nil
		}
	}
	if p.pipeLayout != nil {
		device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
