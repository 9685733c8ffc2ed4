//go:build !nogpu

package mesh

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gizmo"
)

func createNoopDevice(t *testing.T) (hal.Device, hal.Queue) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		openDev.Device.Destroy()
		instance.Destroy()
	})
	return openDev.Device, openDev.Queue
}

func TestRendererUpload(t *testing.T) {
	device, queue := createNoopDevice(t)
	r := NewRenderer(device, queue, gputypes.TextureFormatBGRA8Unorm)
	defer r.Destroy()

	b := New()
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawOpenBox(gizmo.Pt(0, 0), gizmo.Pt(2, 2))
		dc.DrawSolidBox(gizmo.Pt(0, 0), gizmo.Pt(2, 2))
		dc.DrawLine(gizmo.Pt(0, 0), gizmo.Pt(1, 0))
	})
	if err := r.Upload(b); err != nil {
		t.Fatalf("Upload() = %v", err)
	}
	if r.DrawCount() != 3 {
		t.Fatalf("DrawCount() = %d, want 3", r.DrawCount())
	}
	if r.triangles == nil || r.lines == nil {
		t.Fatal("pipelines not created")
	}
	if r.draws[0].pipeline != r.lines || r.draws[1].pipeline != r.triangles {
		t.Error("batches bound to the wrong pipelines")
	}
	if r.draws[1].vertCount != 12 {
		t.Errorf("solid box draws %d vertices, want 12", r.draws[1].vertCount)
	}

	// A second upload replaces the buffers and keeps the pipelines.
	tri := r.triangles
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawSolidBox(gizmo.Pt(0, 0), gizmo.Pt(1, 1))
	})
	if err := r.Upload(b); err != nil {
		t.Fatal(err)
	}
	if r.DrawCount() != 1 || r.triangles != tri {
		t.Errorf("second upload: %d draws, pipeline reused %v", r.DrawCount(), r.triangles == tri)
	}
}

func TestRendererEmptyUpload(t *testing.T) {
	device, queue := createNoopDevice(t)
	r := NewRenderer(device, queue, gputypes.TextureFormatRGBA8Unorm)
	defer r.Destroy()

	if err := r.Upload(New()); err != nil {
		t.Fatal(err)
	}
	if r.DrawCount() != 0 {
		t.Errorf("DrawCount() = %d, want 0", r.DrawCount())
	}
	// Nothing to record, so the pass is never touched.
	r.RecordDraws(nil)
}

func TestRendererDestroy(t *testing.T) {
	device, queue := createNoopDevice(t)
	r := NewRenderer(device, queue, gputypes.TextureFormatBGRA8Unorm)

	b := New()
	flush(t, b, func(dc *gizmo.DrawContext) {
		dc.DrawLine(gizmo.Pt(0, 0), gizmo.Pt(1, 0))
	})
	if err := r.Upload(b); err != nil {
		t.Fatal(err)
	}

	r.Destroy()
	if r.shader != nil || r.pipeLayout != nil || r.triangles != nil || r.lines != nil {
		t.Error("GPU objects survived Destroy")
	}
	if r.DrawCount() != 0 {
		t.Errorf("DrawCount() = %d after Destroy", r.DrawCount())
	}
	r.Destroy()

	// A renderer without a device has nothing to release.
	(&Renderer{}).Destroy()
}
