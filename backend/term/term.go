// Package term provides a backend that renders gizmos into a terminal
// through tcell.
//
// Primitives are rasterized by the raster backend into an image two pixels
// per cell tall; each cell then shows its upper pixel as the foreground
// and its lower pixel as the background of an upper half block.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gizmo"
	"github.com/gogpu/gizmo/backend/raster"
)

// upperHalf is the rune painted in every cell.
const upperHalf = '▀'

// Screen is the subset of tcell.Screen the backend paints on.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

var _ Screen = tcell.Screen(nil)

// Backend renders to a terminal screen.
type Backend struct {
	screen Screen
	opts   []raster.Option
	img    *raster.Backend
}

var _ gizmo.Backend = (*Backend)(nil)

// New creates a terminal backend painting on screen. The raster options
// configure the view; scale is in half-cell pixels per world unit.
func New(screen Screen, opts ...raster.Option) *Backend {
	return &Backend{screen: screen, opts: opts}
}

// Raster returns the backing raster backend, or nil before the first Begin.
func (b *Backend) Raster() *raster.Backend {
	return b.img
}

// Begin sizes the backing image to the screen, reallocating it after a
// resize, and starts the raster pass.
func (b *Backend) Begin() error {
	cols, rows := b.screen.Size()
	if b.img == nil || b.img.Width() != cols || b.img.Height() != rows*2 {
		b.img = raster.New(cols, rows*2, b.opts...)
	}
	return b.img.Begin()
}

// DrawPrimitive rasterizes p.
func (b *Backend) DrawPrimitive(p gizmo.Primitive) {
	b.img.DrawPrimitive(p)
}

// End paints the image on the screen and shows it.
func (b *Backend) End() error {
	if err := b.img.End(); err != nil {
		return err
	}
	img := b.img.Image()
	cols, rows := b.img.Width(), b.img.Height()/2
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(img.RGBAAt(x, 2*y))).
				Background(cellColor(img.RGBAAt(x, 2*y+1)))
			b.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	b.screen.Show()
	return nil
}

// cellColor converts a premultiplied pixel to a terminal color. Fully
// transparent pixels keep the terminal default.
func cellColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
