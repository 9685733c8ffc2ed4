package ebitengine

import (
	"errors"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/gizmo"
)

func TestBackendRegistration(t *testing.T) {
	b, err := gizmo.NewBackend("ebitengine", 320, 240)
	if err != nil {
		t.Fatalf("NewBackend() = %v", err)
	}
	eb, ok := b.(*Backend)
	if !ok {
		t.Fatalf("backend is %T, want *ebitengine.Backend", b)
	}
	if eb.width != 320 || eb.height != 240 || eb.Target() != nil {
		t.Errorf("backend = %dx%d target %v, want lazy 320x240", eb.width, eb.height, eb.Target())
	}
}

func TestBeginWithoutTarget(t *testing.T) {
	if err := New(nil).Begin(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Begin() = %v, want ErrNoTarget", err)
	}
}

func TestAppendTriangle(t *testing.T) {
	p := gizmo.Primitive{
		Topology: gizmo.TriangleList,
		Vertices: []gizmo.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}},
		Colors:   []gizmo.Color{gizmo.Red, gizmo.Green, gizmo.Blue, gizmo.White, gizmo.White, gizmo.White},
	}
	view := gizmo.ViewMatrix(gizmo.Pt(0, 0), 10, 100, 100)

	var vs []ebiten.Vertex
	var is []uint16
	vs, is = appendTriangle(vs, is, view, p, 0)
	vs, is = appendTriangle(vs, is, view, p, 3)

	if len(vs) != 6 {
		t.Fatalf("got %d vertices, want 6", len(vs))
	}
	want := []uint16{0, 1, 2, 3, 4, 5}
	for i := range want {
		if is[i] != want[i] {
			t.Fatalf("indices = %v, want %v", is, want)
		}
	}

	// (0, 1) in world space lands 10 pixels above the center.
	if vs[2].DstX != 50 || vs[2].DstY != 40 {
		t.Errorf("vertex 2 at (%v, %v), want (50, 40)", vs[2].DstX, vs[2].DstY)
	}
	if vs[0].ColorR != 1 || vs[0].ColorG != 0 || vs[1].ColorG != 1 || vs[2].ColorB != 1 {
		t.Error("per-vertex colors not preserved")
	}
}

func TestAppendSegment(t *testing.T) {
	p := gizmo.Primitive{
		Topology: gizmo.LineList,
		Vertices: []gizmo.Point{{X: -5, Y: 0}, {X: 5, Y: 0}},
		Colors:   []gizmo.Color{gizmo.Red, gizmo.Blue},
	}

	vs, is := appendSegment(nil, nil, gizmo.Identity(), p, 0, 1, 2)
	if len(vs) < 4 || len(is) == 0 || len(is)%3 != 0 {
		t.Fatalf("stroke produced %d vertices, %d indices", len(vs), len(is))
	}
	for _, v := range vs {
		if math.Abs(math.Abs(float64(v.DstY))-1) > 1e-4 {
			t.Errorf("stroke vertex y = %v, want +-1 for width 2", v.DstY)
		}
		switch {
		case v.DstX <= -5:
			if v.ColorR != 1 || v.ColorB != 0 {
				t.Errorf("start vertex color = (%v, %v), want red", v.ColorR, v.ColorB)
			}
		case v.DstX >= 5:
			if v.ColorB != 1 || v.ColorR != 0 {
				t.Errorf("end vertex color = (%v, %v), want blue", v.ColorR, v.ColorB)
			}
		}
	}
}

func TestAppendSegmentDegenerate(t *testing.T) {
	p := gizmo.Primitive{
		Topology: gizmo.LineList,
		Vertices: []gizmo.Point{{X: 1, Y: 1}, {X: 1, Y: 1}},
		Colors:   []gizmo.Color{gizmo.Red, gizmo.Red},
	}
	vs, is := appendSegment(nil, nil, gizmo.Identity(), p, 0, 1, 1)
	if len(vs) != 0 || len(is) != 0 {
		t.Errorf("zero-length segment produced %d vertices", len(vs))
	}
}

func TestVertexSamplesWhiteTexel(t *testing.T) {
	v := vertex(gizmo.Pt(3, 4), gizmo.RGBA(0.25, 0.5, 0.75, 0.5))
	if v.SrcX != 0.5 || v.SrcY != 0.5 {
		t.Errorf("source = (%v, %v), want texel center", v.SrcX, v.SrcY)
	}
	if v.ColorR != 0.25 || v.ColorG != 0.5 || v.ColorB != 0.75 || v.ColorA != 0.5 {
		t.Errorf("color = %v %v %v %v", v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}
