// Package ebitengine provides a backend that draws gizmo primitives onto an
// *ebiten.Image, for games built with Ebitengine.
//
// Typical use is to flush a DrawContext from the game's Draw method:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.gizmos.SetTarget(screen)
//		_ = g.dc.Flush(g.gizmos)
//	}
//
// Triangles keep their per-vertex colors. Lines are stroked into quads of
// the configured pixel width, with colors interpolated along each segment.
// Vertices are batched into DrawTriangles calls of at most maxVertices.
package ebitengine

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/gizmo"
)

// maxVertices keeps indices within uint16 with room for one more segment.
const maxVertices = 1<<16 - 64

// ErrNoTarget is returned by Begin when no target image is set.
var ErrNoTarget = errors.New("ebitengine: no target image")

func init() {
	gizmo.Register("ebitengine", func(width, height int) gizmo.Backend {
		return New(nil, WithSize(width, height))
	})
}

// Backend draws primitives onto an ebiten image.
type Backend struct {
	target *ebiten.Image
	white  *ebiten.Image

	width, height int
	center        gizmo.Point
	scale         float64
	lineWidth     float32
	antiAlias     bool

	view gizmo.Matrix
	vs   []ebiten.Vertex
	is   []uint16

	primitives int
	draws      int
}

var _ gizmo.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithCenter sets the world point shown in the middle of the target.
func WithCenter(p gizmo.Point) Option {
	return func(b *Backend) { b.center = p }
}

// WithScale sets the number of pixels per world unit.
func WithScale(s float64) Option {
	return func(b *Backend) {
		if s > 0 {
			b.scale = s
		}
	}
}

// WithLineWidth sets the stroke width of line primitives in pixels.
func WithLineWidth(px float32) Option {
	return func(b *Backend) {
		if px > 0 {
			b.lineWidth = px
		}
	}
}

// WithAntiAlias enables anti-aliased triangle rendering.
func WithAntiAlias(enabled bool) Option {
	return func(b *Backend) { b.antiAlias = enabled }
}

// WithSize sets the size of the image the backend allocates when no target
// is given.
func WithSize(width, height int) Option {
	return func(b *Backend) {
		b.width = width
		b.height = height
	}
}

// New creates a backend drawing onto target. A nil target is allocated
// lazily by Begin using the size from WithSize.
func New(target *ebiten.Image, opts ...Option) *Backend {
	b := &Backend{
		target:    target,
		scale:     1,
		lineWidth: 1,
		view:      gizmo.Identity(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// SetTarget replaces the target image, typically with the screen passed
// to the game's Draw method.
func (b *Backend) SetTarget(target *ebiten.Image) {
	b.target = target
}

// Target returns the image the backend draws onto.
func (b *Backend) Target() *ebiten.Image {
	return b.target
}

// SetView moves the view. It takes effect at the next Begin.
func (b *Backend) SetView(center gizmo.Point, scale float64) {
	b.center = center
	if scale > 0 {
		b.scale = scale
	}
}

// Begin binds the view to the target size.
func (b *Backend) Begin() error {
	if b.target == nil {
		if b.width <= 0 || b.height <= 0 {
			return ErrNoTarget
		}
		b.target = ebiten.NewImage(b.width, b.height)
	}
	if b.white == nil {
		b.white = ebiten.NewImage(1, 1)
		b.white.Fill(color.White)
	}
	bounds := b.target.Bounds()
	b.view = gizmo.ViewMatrix(b.center, b.scale, bounds.Dx(), bounds.Dy())
	b.vs = b.vs[:0]
	b.is = b.is[:0]
	b.primitives = 0
	b.draws = 0
	return nil
}

// DrawPrimitive converts p to vertices, drawing the pending batch first
// when it is full.
func (b *Backend) DrawPrimitive(p gizmo.Primitive) {
	b.primitives++
	switch p.Topology {
	case gizmo.TriangleList:
		for i := 0; i+2 < len(p.Vertices); i += 3 {
			b.reserve(3)
			b.vs, b.is = appendTriangle(b.vs, b.is, b.view, p, i)
		}
	case gizmo.LineList:
		for i := 0; i+1 < len(p.Vertices); i += 2 {
			b.reserve(4)
			b.vs, b.is = appendSegment(b.vs, b.is, b.view, p, i, i+1, b.lineWidth)
		}
	case gizmo.LineStrip:
		for i := 0; i+1 < len(p.Vertices); i++ {
			b.reserve(4)
			b.vs, b.is = appendSegment(b.vs, b.is, b.view, p, i, i+1, b.lineWidth)
		}
	}
}

// End draws the pending batch.
func (b *Backend) End() error {
	b.flush()
	gizmo.Logger().Debug("ebitengine: pass complete",
		"primitives", b.primitives,
		"draws", b.draws)
	return nil
}

func (b *Backend) reserve(n int) {
	if len(b.vs)+n > maxVertices {
		b.flush()
	}
}

func (b *Backend) flush() {
	if len(b.is) == 0 || b.target == nil {
		b.vs, b.is = b.vs[:0], b.is[:0]
		return
	}
	b.target.DrawTriangles(b.vs, b.is, b.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: b.antiAlias,
	})
	b.draws++
	b.vs, b.is = b.vs[:0], b.is[:0]
}

// appendTriangle appends triangle i of p in device space.
func appendTriangle(vs []ebiten.Vertex, is []uint16, view gizmo.Matrix, p gizmo.Primitive, i int) ([]ebiten.Vertex, []uint16) {
	base := uint16(len(vs))
	for j := i; j < i+3; j++ {
		vs = append(vs, vertex(view.Apply(p.Vertices[j]), p.Colors[j]))
	}
	return vs, append(is, base, base+1, base+2)
}

// appendSegment strokes the segment from vertex i to j of p.
func appendSegment(vs []ebiten.Vertex, is []uint16, view gizmo.Matrix, p gizmo.Primitive, i, j int, width float32) ([]ebiten.Vertex, []uint16) {
	a := view.Apply(p.Vertices[i])
	c := view.Apply(p.Vertices[j])
	if a == c {
		return vs, is
	}

	var path vector.Path
	path.MoveTo(float32(a.X), float32(a.Y))
	path.LineTo(float32(c.X), float32(c.Y))

	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForStroke(vs, is, &vector.StrokeOptions{
		Width: width,
	})

	// Color each stroke vertex by its projection onto the segment.
	d := c.Sub(a)
	ll := d.Dot(d)
	for k := start; k < len(vs); k++ {
		t := gizmo.Pt(float64(vs[k].DstX), float64(vs[k].DstY)).Sub(a).Dot(d) / ll
		t = min(max(t, 0), 1)
		setColor(&vs[k], p.Colors[i].Lerp(p.Colors[j], t))
	}
	return vs, is
}

func vertex(p gizmo.Point, c gizmo.Color) ebiten.Vertex {
	v := ebiten.Vertex{
		DstX: float32(p.X),
		DstY: float32(p.Y),
		SrcX: 0.5,
		SrcY: 0.5,
	}
	setColor(&v, c)
	return v
}

func setColor(v *ebiten.Vertex, c gizmo.Color) {
	v.ColorR = float32(c.R)
	v.ColorG = float32(c.G)
	v.ColorB = float32(c.B)
	v.ColorA = float32(c.A)
}
