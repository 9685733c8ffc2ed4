package raster

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gizmo"
)

func TestBackendRegistration(t *testing.T) {
	if !gizmo.IsRegistered("raster") {
		t.Fatal("raster backend not registered")
	}
	b, err := gizmo.NewBackend("raster", 64, 32)
	if err != nil {
		t.Fatalf("NewBackend() = %v", err)
	}
	rb, ok := b.(*Backend)
	if !ok {
		t.Fatalf("backend is %T, want *raster.Backend", b)
	}
	if rb.Width() != 64 || rb.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", rb.Width(), rb.Height())
	}
}

func flush(t *testing.T, b *Backend, draw func(dc *gizmo.DrawContext)) {
	t.Helper()
	dc := gizmo.NewDrawContext()
	draw(dc)
	if err := dc.Flush(b); err != nil {
		t.Fatalf("Flush() = %v", err)
	}
}

func TestSolidBox(t *testing.T) {
	b := New(20, 20)
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawSolidBox(gizmo.Pt(0, 0), gizmo.Pt(10, 10), gizmo.WithColor(gizmo.Red))
	})

	img := b.Image()
	if got := img.RGBAAt(12, 11); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("inner pixel = %v, want opaque red", got)
	}
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}

func TestViewFlipsY(t *testing.T) {
	b := New(20, 20, WithScale(2))
	flush(t, b, func(dc *gizmo.DrawContext) {
		// A box above the origin in world space.
		dc.DrawSolidBox(gizmo.Pt(0, 3), gizmo.Pt(2, 2), gizmo.WithColor(gizmo.Green))
	})

	img := b.Image()
	// World y=3 maps to device y = 10 - 3*2 = 4.
	if got := img.RGBAAt(10, 4); got.G != 255 {
		t.Errorf("pixel above center = %v, want green", got)
	}
	if got := img.RGBAAt(10, 16); got.A != 0 {
		t.Errorf("pixel below center = %v, want transparent", got)
	}
}

func TestLineWidth(t *testing.T) {
	b := New(20, 20, WithLineWidth(2))
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawLine(gizmo.Pt(-5, 0), gizmo.Pt(5, 0), gizmo.WithColor(gizmo.Blue))
	})

	img := b.Image()
	for _, y := range []int{9, 10} {
		if got := img.RGBAAt(10, y); got != (color.RGBA{0, 0, 255, 255}) {
			t.Errorf("pixel (10, %d) = %v, want opaque blue", y, got)
		}
	}
	for _, y := range []int{7, 12} {
		if got := img.RGBAAt(10, y); got.A != 0 {
			t.Errorf("pixel (10, %d) = %v, want transparent", y, got)
		}
	}
}

func TestBackgroundAndPreserve(t *testing.T) {
	b := New(8, 8, WithBackground(gizmo.Black))
	flush(t, b, func(*gizmo.DrawContext) {})
	if got := b.Image().RGBAAt(3, 3); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("background = %v, want opaque black", got)
	}

	p := New(8, 8, WithPreserve())
	flush(t, p, func(dc *gizmo.DrawContext) {
		dc.DrawSolidBox(gizmo.Pt(-2, 0), gizmo.Pt(4, 8), gizmo.WithColor(gizmo.Red))
	})
	flush(t, p, func(dc *gizmo.DrawContext) {
		dc.DrawSolidBox(gizmo.Pt(2, 0), gizmo.Pt(4, 8), gizmo.WithColor(gizmo.Green))
	})
	if got := p.Image().RGBAAt(1, 4); got.R != 255 {
		t.Errorf("first pass was cleared: %v", got)
	}
	if got := p.Image().RGBAAt(6, 4); got.G != 255 {
		t.Errorf("second pass missing: %v", got)
	}
}

func TestMultiColoredPolygon(t *testing.T) {
	b := New(40, 40)
	square := []gizmo.Point{{X: -10, Y: -10}, {X: 10, Y: -10}, {X: 10, Y: 10}, {X: -10, Y: 10}}
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawMultiColoredPolygon(square, []gizmo.Color{gizmo.Red, gizmo.Green})
	})

	img := b.Image()
	// The first fan triangle spans the bottom edge, the second the right edge.
	if got := img.RGBAAt(20, 28); got.R != 255 || got.G != 0 {
		t.Errorf("bottom triangle = %v, want red", got)
	}
	if got := img.RGBAAt(28, 20); got.G != 255 || got.R != 0 {
		t.Errorf("right triangle = %v, want green", got)
	}
}

func TestTranslucentFanHasNoSeams(t *testing.T) {
	b := New(40, 40)
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawSolidCircle(gizmo.Pt(0, 0), 15, gizmo.WithColor(gizmo.RGBA(1, 0, 0, 0.5)))
	})

	img := b.Image()
	want := img.RGBAAt(20, 20).A
	for x := 12; x <= 28; x++ {
		if got := img.RGBAAt(x, 20).A; got != want {
			t.Fatalf("alpha at x=%d is %d, want uniform %d", x, got, want)
		}
	}
}

func TestWriteToAndSavePNG(t *testing.T) {
	b := New(16, 16, WithBackground(gizmo.White))
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawOpenCircle(gizmo.Pt(0, 0), 5, gizmo.WithColor(gizmo.Black))
	})

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() reported %d bytes, wrote %d", n, buf.Len())
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if img.Bounds().Dx() != 16 {
		t.Errorf("decoded width = %d", img.Bounds().Dx())
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() = %v", err)
	}
	if st, err := os.Stat(path); err != nil || st.Size() == 0 {
		t.Errorf("SavePNG wrote nothing: %v", err)
	}
}

func TestBeginRejectsEmptyImage(t *testing.T) {
	if err := New(0, 10).Begin(); err == nil {
		t.Error("Begin() on a 0x10 image succeeded")
	}
}
