package gizmocanvas

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gizmo"
	"github.com/gogpu/gizmo/backend/raster"
)

// mockTexture implements the texture interfaces for testing.
type mockTexture struct {
	width         int
	height        int
	data          []byte
	destroyed     bool
	updated       int
	premultiplied bool
}

func (m *mockTexture) Width() int  { return m.width }
func (m *mockTexture) Height() int { return m.height }

func (m *mockTexture) UpdateData(data []byte) error {
	m.data = append(m.data[:0], data...)
	m.updated++
	return nil
}

func (m *mockTexture) Destroy()                  { m.destroyed = true }
func (m *mockTexture) SetPremultiplied(pm bool) { m.premultiplied = pm }

// mockCreator implements gpucontext.TextureCreator for testing.
type mockCreator struct {
	textures []*mockTexture
	failNext bool
}

func (m *mockCreator) NewTextureFromRGBA(width, height int, data []byte) (gpucontext.Texture, error) {
	if m.failNext {
		m.failNext = false
		return nil, errors.New("mock texture creation failed")
	}
	tex := &mockTexture{width: width, height: height, data: append([]byte(nil), data...)}
	m.textures = append(m.textures, tex)
	return tex, nil
}

// mockDrawer implements gpucontext.TextureDrawer for testing.
type mockDrawer struct {
	creator   *mockCreator
	drawn     gpucontext.Texture
	x, y      float32
	drawCount int
}

func (m *mockDrawer) DrawTexture(tex gpucontext.Texture, x, y float32) error {
	m.drawn = tex
	m.x, m.y = x, y
	m.drawCount++
	return nil
}

func (m *mockDrawer) TextureCreator() gpucontext.TextureCreator {
	if m.creator == nil {
		return nil
	}
	return m.creator
}

func newDrawer() *mockDrawer {
	return &mockDrawer{creator: &mockCreator{}}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       error
	}{
		{"valid", 80, 60, nil},
		{"zero width", 0, 60, ErrInvalidDimensions},
		{"negative height", 80, -1, ErrInvalidDimensions},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if w, h := c.Size(); w != tt.width || h != tt.height {
				t.Errorf("Size() = %dx%d", w, h)
			}
			if !c.IsDirty() {
				t.Error("new canvas is not dirty")
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew(0, 0) did not panic")
		}
	}()
	MustNew(0, 0)
}

func TestRenderTo(t *testing.T) {
	c := MustNew(20, 20, raster.WithBackground(gizmo.Black))
	defer c.Close()

	dc := gizmo.NewDrawContext()
	dc.DrawSolidCircle(gizmo.Pt(0, 0), 5, gizmo.WithColor(gizmo.Red))
	if err := c.Render(dc); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	td := newDrawer()
	if err := c.RenderTo(td); err != nil {
		t.Fatalf("RenderTo() = %v", err)
	}
	if len(td.creator.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(td.creator.textures))
	}
	tex := td.creator.textures[0]
	if tex.width != 20 || tex.height != 20 || len(tex.data) != 20*20*4 {
		t.Errorf("texture = %dx%d with %d bytes", tex.width, tex.height, len(tex.data))
	}
	if !tex.premultiplied {
		t.Error("texture not marked premultiplied")
	}
	// Center pixel is red.
	i := (10*20 + 10) * 4
	if tex.data[i] != 255 || tex.data[i+1] != 0 || tex.data[i+3] != 255 {
		t.Errorf("center pixel = %v", tex.data[i:i+4])
	}
	if td.drawCount != 1 || td.drawn != gpucontext.Texture(tex) || td.x != 0 || td.y != 0 {
		t.Errorf("draw = %d at (%v, %v)", td.drawCount, td.x, td.y)
	}
	if c.IsDirty() {
		t.Error("canvas still dirty after upload")
	}
}

func TestRenderToPosition(t *testing.T) {
	c := MustNew(10, 10)
	td := newDrawer()
	if err := c.RenderToPosition(td, 50, 75); err != nil {
		t.Fatal(err)
	}
	if td.x != 50 || td.y != 75 {
		t.Errorf("drawn at (%v, %v), want (50, 75)", td.x, td.y)
	}
}

func TestTextureReuseAndUpdate(t *testing.T) {
	c := MustNew(10, 10)
	td := newDrawer()

	for range 2 {
		if err := c.RenderTo(td); err != nil {
			t.Fatal(err)
		}
	}
	if len(td.creator.textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(td.creator.textures))
	}
	tex := td.creator.textures[0]
	if tex.updated != 0 {
		t.Errorf("clean canvas uploaded %d times", tex.updated)
	}

	if err := c.Render(gizmo.NewDrawContext()); err != nil {
		t.Fatal(err)
	}
	if err := c.RenderTo(td); err != nil {
		t.Fatal(err)
	}
	if tex.updated != 1 {
		t.Errorf("texture updated %d times, want 1", tex.updated)
	}
	if td.drawCount != 3 {
		t.Errorf("DrawTexture called %d times, want 3", td.drawCount)
	}
}

func TestResizeReplacesTexture(t *testing.T) {
	c := MustNew(10, 10)
	td := newDrawer()
	if err := c.RenderTo(td); err != nil {
		t.Fatal(err)
	}

	if err := c.Resize(10, 10); err != nil || c.IsDirty() {
		t.Fatalf("same-size Resize() = %v, dirty %v", err, c.IsDirty())
	}
	if err := c.Resize(30, 20); err != nil {
		t.Fatal(err)
	}
	if err := c.Resize(0, 20); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Resize(0, 20) = %v", err)
	}
	if err := c.RenderTo(td); err != nil {
		t.Fatal(err)
	}

	if len(td.creator.textures) != 2 {
		t.Fatalf("created %d textures, want 2", len(td.creator.textures))
	}
	old, cur := td.creator.textures[0], td.creator.textures[1]
	if !old.destroyed {
		t.Error("old texture not destroyed after replacement")
	}
	if cur.width != 30 || cur.height != 20 {
		t.Errorf("new texture = %dx%d, want 30x20", cur.width, cur.height)
	}
}

func TestRenderToErrors(t *testing.T) {
	c := MustNew(10, 10)

	if err := c.RenderTo(&mockDrawer{}); !errors.Is(err, ErrInvalidRenderer) {
		t.Errorf("RenderTo() without creator = %v, want ErrInvalidRenderer", err)
	}

	td := newDrawer()
	td.creator.failNext = true
	if err := c.RenderTo(td); err == nil {
		t.Error("RenderTo() succeeded although texture creation failed")
	}
	if td.drawCount != 0 {
		t.Errorf("drew %d times after failure", td.drawCount)
	}

	if err := c.Render(nil); !errors.Is(err, ErrNilContext) {
		t.Errorf("Render(nil) = %v, want ErrNilContext", err)
	}
}

func TestClose(t *testing.T) {
	c := MustNew(10, 10)
	td := newDrawer()
	if err := c.RenderTo(td); err != nil {
		t.Fatal(err)
	}

	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
	if !td.creator.textures[0].destroyed {
		t.Error("texture not destroyed on Close")
	}
	if c.Backend() != nil || c.Texture() != nil {
		t.Error("closed canvas still exposes resources")
	}

	if err := c.Render(gizmo.NewDrawContext()); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Render() after Close = %v", err)
	}
	if err := c.RenderTo(td); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("RenderTo() after Close = %v", err)
	}
	if err := c.Resize(5, 5); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Resize() after Close = %v", err)
	}
}
