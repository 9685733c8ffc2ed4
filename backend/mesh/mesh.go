// Package mesh provides a backend that packs gizmo primitives into
// GPU-ready vertex buffers.
//
// The backend does not own a device. It produces interleaved vertex data,
// the matching gputypes vertex layout and primitive state, and the SPIR-V
// of a flat color shader, so any WebGPU host can upload and draw the
// batches with a single pipeline per topology. Renderer does exactly that
// on a wgpu HAL device.
//
// Vertex format (VertexStride bytes, little-endian float32):
//
//	offset 0:  position x, y (clip space)
//	offset 8:  color r, g, b, a (straight alpha)
//
// Line strips are expanded into line lists so all lines of a pass can be
// drawn from one buffer.
package mesh

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"

	"github.com/gogpu/gizmo"
)

//go:embed shaders/gizmo.wgsl
var shaderSource string

// VertexStride is the size of one packed vertex in bytes.
const VertexStride = 24

func init() {
	gizmo.Register("mesh", func(width, height int) gizmo.Backend {
		return New(WithTransform(ClipMatrix(gizmo.Point{}, 1, width, height)))
	})
}

// Batch is a run of consecutive primitives sharing a topology.
type Batch struct {
	// Topology is LineList or TriangleList.
	Topology gizmo.Topology
	// Data holds VertexCount packed vertices.
	Data []byte
}

// VertexCount returns the number of vertices in the batch.
func (b Batch) VertexCount() uint32 {
	return uint32(len(b.Data) / VertexStride)
}

// Backend accumulates primitives into batches.
type Backend struct {
	transform  gizmo.Matrix
	batches    []Batch
	primitives int
}

var _ gizmo.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithTransform sets the world to clip space transform applied to every
// vertex. The default is the identity.
func WithTransform(m gizmo.Matrix) Option {
	return func(b *Backend) { b.transform = m }
}

// New creates a mesh backend.
func New(opts ...Option) *Backend {
	b := &Backend{transform: gizmo.Identity()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// ClipMatrix maps world coordinates to clip space for a width x height
// viewport showing center in the middle at scale pixels per unit.
// Clip space is y-up, like world space, so no flip is needed.
func ClipMatrix(center gizmo.Point, scale float64, width, height int) gizmo.Matrix {
	if width <= 0 || height <= 0 || scale <= 0 {
		return gizmo.Identity()
	}
	return gizmo.Scale(2/float64(width), 2/float64(height)).
		Multiply(gizmo.Scale(scale, scale)).
		Multiply(gizmo.Translate(-center.X, -center.Y))
}

// SetTransform replaces the world to clip space transform.
func (b *Backend) SetTransform(m gizmo.Matrix) {
	b.transform = m
}

// Begin drops the batches of the previous pass.
func (b *Backend) Begin() error {
	b.batches = b.batches[:0]
	b.primitives = 0
	return nil
}

// DrawPrimitive packs p into the current batch, starting a new batch when
// the topology changes.
func (b *Backend) DrawPrimitive(p gizmo.Primitive) {
	b.primitives++
	switch p.Topology {
	case gizmo.TriangleList:
		dst := b.batch(gizmo.TriangleList)
		for i := 0; i+2 < len(p.Vertices); i += 3 {
			for j := i; j < i+3; j++ {
				dst.Data = b.appendVertex(dst.Data, p.Vertices[j], p.Colors[j])
			}
		}
	case gizmo.LineList:
		dst := b.batch(gizmo.LineList)
		for i := 0; i+1 < len(p.Vertices); i += 2 {
			dst.Data = b.appendVertex(dst.Data, p.Vertices[i], p.Colors[i])
			dst.Data = b.appendVertex(dst.Data, p.Vertices[i+1], p.Colors[i+1])
		}
	case gizmo.LineStrip:
		dst := b.batch(gizmo.LineList)
		for i := 0; i+1 < len(p.Vertices); i++ {
			dst.Data = b.appendVertex(dst.Data, p.Vertices[i], p.Colors[i])
			dst.Data = b.appendVertex(dst.Data, p.Vertices[i+1], p.Colors[i+1])
		}
	}
}

// End finishes the pass.
func (b *Backend) End() error {
	gizmo.Logger().Debug("mesh: pass complete",
		"primitives", b.primitives,
		"batches", len(b.batches),
		"vertices", b.VertexCount())
	return nil
}

// Batches returns the batches of the last pass. The slice is reused by the
// next Begin.
func (b *Backend) Batches() []Batch {
	return b.batches
}

// VertexCount returns the total vertex count of the last pass.
func (b *Backend) VertexCount() uint32 {
	var n uint32
	for _, batch := range b.batches {
		n += batch.VertexCount()
	}
	return n
}

// batch returns the last batch if it has topology t, or appends a new one.
func (b *Backend) batch(t gizmo.Topology) *Batch {
	if n := len(b.batches); n > 0 && b.batches[n-1].Topology == t {
		return &b.batches[n-1]
	}
	b.batches = append(b.batches, Batch{Topology: t})
	return &b.batches[len(b.batches)-1]
}

func (b *Backend) appendVertex(buf []byte, p gizmo.Point, c gizmo.Color) []byte {
	if !b.transform.IsIdentity() {
		p = b.transform.Apply(p)
	}
	var v [VertexStride]byte
	binary.LittleEndian.PutUint32(v[0:4], math.Float32bits(float32(p.X)))
	binary.LittleEndian.PutUint32(v[4:8], math.Float32bits(float32(p.Y)))
	binary.LittleEndian.PutUint32(v[8:12], math.Float32bits(float32(c.R)))
	binary.LittleEndian.PutUint32(v[12:16], math.Float32bits(float32(c.G)))
	binary.LittleEndian.PutUint32(v[16:20], math.Float32bits(float32(c.B)))
	binary.LittleEndian.PutUint32(v[20:24], math.Float32bits(float32(c.A)))
	return append(buf, v[:]...)
}

// VertexLayout returns the vertex buffer layout of the packed batches.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1}, // color
			},
		},
	}
}

// PrimitiveState returns the pipeline primitive state for drawing a batch
// of topology t.
func PrimitiveState(t gizmo.Topology) gputypes.PrimitiveState {
	return gputypes.PrimitiveState{
		Topology: t.GPU(),
		CullMode: gputypes.CullModeNone,
	}
}

// ShaderSource returns the WGSL source of the gizmo shader.
// Entry points are vs_main and fs_main.
func ShaderSource() string {
	return shaderSource
}

// CompileShader compiles the gizmo shader to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return spirvCode, nil
}
