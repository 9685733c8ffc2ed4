// Package gizmocanvas shows gizmos in gogpu GPU-accelerated windows.
//
// A Canvas owns a raster backend. Draw contexts are flushed into its image,
// and the image is uploaded to a GPU texture and drawn into the window:
//
//	gizmo.DrawContext (queue) -> raster.Backend (CPU) -> GPU Texture -> Window
//
// # Usage
//
//	canvas, _ := gizmocanvas.New(800, 600, raster.WithScale(40))
//	defer canvas.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    gizmos.DrawSolidCircle(gizmo.Pt(0, 0), 2)
//	    _ = canvas.Render(gizmos)
//	    _ = canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. The DrawContext it renders is.
//
// # Performance Notes
//
//   - The texture is created lazily on the first RenderTo
//   - Dirty tracking skips uploads when nothing was rendered
//   - Resize replaces the texture after the GPU is done with the old one
package gizmocanvas
