// Package raster provides a software backend that rasterizes gizmo
// primitives into an *image.RGBA with golang.org/x/image/vector.
//
// World coordinates are mapped to pixels by a view: the view center lands
// in the middle of the image and one world unit spans Scale pixels, with
// the y axis flipped so world up is image up.
//
// Lines are drawn as quads of a fixed pixel width. Triangles take the
// average of their vertex colors; consecutive triangles or segments of the
// same color are filled as one path, so shared edges of a fan do not
// double-blend.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/gizmo/backend/raster"
//
//	// Create via registry
//	b, _ := gizmo.NewBackend("raster", 512, 512)
//
//	// Or create directly
//	b := raster.New(512, 512, raster.WithScale(20), raster.WithBackground(gizmo.Black))
//
//	dc.Flush(b)
//	b.SavePNG("gizmos.png")
package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/gizmo"
)

func init() {
	gizmo.Register("raster", func(width, height int) gizmo.Backend {
		return New(width, height)
	})
}

// Backend rasterizes primitives into an RGBA image.
type Backend struct {
	img *image.RGBA
	z   *vector.Rasterizer

	center     gizmo.Point
	scale      float64
	lineWidth  float64
	background gizmo.Color
	preserve   bool

	view       gizmo.Matrix
	pending    batch
	primitives int
}

var _ gizmo.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithCenter sets the world point shown in the middle of the image.
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

// WithLineWidth sets the width of line primitives in pixels.
func WithLineWidth(px float64) Option {
	return func(b *Backend) {
		if px > 0 {
			b.lineWidth = px
		}
	}
}

// WithBackground sets the color the image is cleared to by Begin.
// The default is transparent.
func WithBackground(c gizmo.Color) Option {
	return func(b *Backend) { b.background = c }
}

// WithPreserve keeps the image contents across passes instead of clearing
// it in Begin, so several contexts can be flushed onto one image.
func WithPreserve() Option {
	return func(b *Backend) { b.preserve = true }
}

// New creates a raster backend with a width x height image.
func New(width, height int, opts ...Option) *Backend {
	b := &Backend{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		z:          vector.NewRasterizer(width, height),
		scale:      1,
		lineWidth:  1,
		background: gizmo.Transparent,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.view = gizmo.ViewMatrix(b.center, b.scale, width, height)
	return b
}

// SetView moves the view. It takes effect at the next Begin.
func (b *Backend) SetView(center gizmo.Point, scale float64) {
	b.center = center
	if scale > 0 {
		b.scale = scale
	}
}

// View returns the world to pixel transform of the current pass.
func (b *Backend) View() gizmo.Matrix {
	return b.view
}

// Begin clears the image (unless WithPreserve was given) and binds the view.
func (b *Backend) Begin() error {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("raster: invalid image size %dx%d", w, h)
	}
	if !b.preserve {
		draw.Draw(b.img, b.img.Bounds(), image.NewUniform(b.background), image.Point{}, draw.Src)
	}
	b.view = gizmo.ViewMatrix(b.center, b.scale, w, h)
	b.primitives = 0
	return nil
}

// DrawPrimitive rasterizes p onto the image.
func (b *Backend) DrawPrimitive(p gizmo.Primitive) {
	b.primitives++
	switch p.Topology {
	case gizmo.TriangleList:
		b.drawTriangles(p)
	case gizmo.LineList:
		for i := 0; i+1 < len(p.Vertices); i += 2 {
			b.addSegment(p, i, i+1)
		}
	case gizmo.LineStrip:
		for i := 0; i+1 < len(p.Vertices); i++ {
			b.addSegment(p, i, i+1)
		}
	}
	b.fill()
}

// End finishes the pass.
func (b *Backend) End() error {
	gizmo.Logger().Debug("raster: pass complete",
		"primitives", b.primitives,
		"width", b.Width(),
		"height", b.Height())
	return nil
}

// Image returns the rendered image. It is reused across passes.
func (b *Backend) Image() *image.RGBA {
	return b.img
}

// Width returns the image width in pixels.
func (b *Backend) Width() int {
	return b.img.Bounds().Dx()
}

// Height returns the image height in pixels.
func (b *Backend) Height() int {
	return b.img.Bounds().Dy()
}

// WriteTo writes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := png.Encode(cw, b.img)
	return cw.n, err
}

// SavePNG writes the image as PNG to the file at path.
func (b *Backend) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if _, err := b.WriteTo(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	gizmo.Logger().Info("raster: image written", "path", path)
	return nil
}

// batch state: the rasterizer accumulates shapes of one color until the
// color changes or the primitive ends.
type batch struct {
	color gizmo.Color
	open  bool
}

func (b *Backend) drawTriangles(p gizmo.Primitive) {
	for i := 0; i+2 < len(p.Vertices); i += 3 {
		c := average(p.Colors[i], p.Colors[i+1], p.Colors[i+2])
		b.setColor(c)
		b.addPolygon(
			b.view.Apply(p.Vertices[i]),
			b.view.Apply(p.Vertices[i+1]),
			b.view.Apply(p.Vertices[i+2]),
		)
	}
}

func (b *Backend) addSegment(p gizmo.Primitive, i, j int) {
	a := b.view.Apply(p.Vertices[i])
	c := b.view.Apply(p.Vertices[j])
	d := c.Sub(a)
	if d.Length() == 0 {
		return
	}
	n := gizmo.Pt(-d.Y, d.X).Normalize().Mul(b.lineWidth / 2)

	b.setColor(average(p.Colors[i], p.Colors[j]))
	b.addPolygon(a.Add(n), c.Add(n), c.Sub(n), a.Sub(n))
}

// addPolygon appends a closed polygon to the rasterizer path. All polygons
// are emitted with the same winding so overlapping coverage adds up
// instead of cancelling.
func (b *Backend) addPolygon(pts ...gizmo.Point) {
	area := 0.0
	for i := range pts {
		area += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	if area == 0 {
		return
	}
	if area < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	b.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		b.z.LineTo(float32(p.X), float32(p.Y))
	}
	b.z.ClosePath()
	b.pending.open = true
}

func (b *Backend) setColor(c gizmo.Color) {
	if b.pending.open && b.pending.color != c {
		b.fill()
	}
	b.pending.color = c
}

// fill composites the accumulated path and resets the rasterizer.
func (b *Backend) fill() {
	if b.pending.open {
		b.z.Draw(b.img, b.img.Bounds(), image.NewUniform(b.pending.color), image.Point{})
	}
	b.z.Reset(b.Width(), b.Height())
	b.pending.open = false
}

func average(colors ...gizmo.Color) gizmo.Color {
	uniform := true
	for _, c := range colors[1:] {
		uniform = uniform && c == colors[0]
	}
	if uniform {
		return colors[0]
	}
	var sum gizmo.Color
	for _, c := range colors {
		sum.R += c.R
		sum.G += c.G
		sum.B += c.B
		sum.A += c.A
	}
	n := float64(len(colors))
	return gizmo.Color{R: sum.R / n, G: sum.G / n, B: sum.B / n, A: sum.A / n}
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
