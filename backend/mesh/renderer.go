//go:build !nogpu

package mesh

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gizmo"
)

// Renderer draws the batches of a Backend on a wgpu HAL device.
// It holds one pipeline per topology and one vertex buffer per batch
// of the last upload.
type Renderer struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	shader     hal.ShaderModule
	pipeLayout hal.PipelineLayout
	triangles  hal.RenderPipeline
	lines      hal.RenderPipeline

	draws []batchDraw
}

type batchDraw struct {
	pipeline  hal.RenderPipeline
	buf       hal.Buffer
	vertCount uint32
}

// NewRenderer returns a renderer targeting color attachments of format.
// Pipelines are created on the first Upload.
func NewRenderer(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) *Renderer {
	return &Renderer{device: device, queue: queue, format: format}
}

// Upload replaces the vertex buffers with the batches of b.
func (r *Renderer) Upload(b *Backend) error {
	if err := r.ensurePipelines(); err != nil {
		return err
	}
	r.releaseBuffers()

	for i, batch := range b.Batches() {
		if batch.VertexCount() == 0 {
			continue
		}
		label := fmt.Sprintf("gizmo_batch_%d", i)
		buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
			Label: label,
			Size:  uint64(len(batch.Data)),
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
		if err != nil {
			r.releaseBuffers()
			return fmt.Errorf("create %s: %w", label, err)
		}
		r.queue.WriteBuffer(buf, 0, batch.Data)

		pipeline := r.triangles
		if batch.Topology != gizmo.TriangleList {
			pipeline = r.lines
		}
		r.draws = append(r.draws, batchDraw{pipeline: pipeline, buf: buf, vertCount: batch.VertexCount()})
	}
	gizmo.Logger().Debug("mesh: uploaded", "draws", len(r.draws))
	return nil
}

// RecordDraws records the uploaded batches into an open render pass,
// in submission order.
func (r *Renderer) RecordDraws(rp hal.RenderPassEncoder) {
	for _, d := range r.draws {
		rp.SetPipeline(d.pipeline)
		rp.SetVertexBuffer(0, d.buf, 0)
		rp.Draw(d.vertCount, 1, 0, 0)
	}
}

// DrawCount returns the number of draw calls RecordDraws will record.
func (r *Renderer) DrawCount() int {
	return len(r.draws)
}

// Destroy releases all GPU resources. It is safe to call more than once.
func (r *Renderer) Destroy() {
	if r.device == nil {
		return
	}
	r.releaseBuffers()
	for _, p := range []*hal.RenderPipeline{&r.triangles, &r.lines} {
		if *p != nil {
			r.device.DestroyRenderPipeline(*p)
			*p = nil
		}
	}
	if r.pipeLayout != nil {
		r.device.DestroyPipelineLayout(r.pipeLayout)
		r.pipeLayout = nil
	}
	if r.shader != nil {
		r.device.DestroyShaderModule(r.shader)
		r.shader = nil
	}
}

func (r *Renderer) releaseBuffers() {
	for _, d := range r.draws {
		r.device.DestroyBuffer(d.buf)
	}
	r.draws = r.draws[:0]
}

func (r *Renderer) ensurePipelines() error {
	if r.triangles != nil && r.lines != nil {
		return nil
	}

	if r.shader == nil {
		shader, err := r.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  "gizmo_shader",
			Source: hal.ShaderSource{WGSL: shaderSource},
		})
		if err != nil {
			return fmt.Errorf("compile gizmo shader: %w", err)
		}
		r.shader = shader
	}

	if r.pipeLayout == nil {
		layout, err := r.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
			Label: "gizmo_pipe_layout",
		})
		if err != nil {
			return fmt.Errorf("create gizmo pipeline layout: %w", err)
		}
		r.pipeLayout = layout
	}

	var err error
	if r.triangles == nil {
		if r.triangles, err = r.createPipeline(gizmo.TriangleList); err != nil {
			return err
		}
	}
	if r.lines == nil {
		if r.lines, err = r.createPipeline(gizmo.LineList); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) createPipeline(t gizmo.Topology) (hal.RenderPipeline, error) {
	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := r.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "gizmo_" + t.String(),
		Layout: r.pipeLayout,
		Vertex: hal.VertexState{
			Module:     r.shader,
			EntryPoint: "vs_main",
			Buffers:    VertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     r.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    r.format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: PrimitiveState(t),
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create gizmo %s pipeline: %w", t, err)
	}
	return pipeline, nil
}
