// Package gizmo provides deferred, immediate-mode 2D debug geometry.
//
// # Overview
//
// Callers describe shapes (boxes, rounded boxes, lines, dashed lines,
// paths, polygons, triangles, circles and arcs, capsules, Bézier curves,
// physics collider outlines) on a DrawContext. Nothing is computed at that
// point: every call records a plain-data Command. Once per render pass the
// host calls Flush, which tessellates each command into line or triangle
// primitives and hands them to a Backend in the order they were recorded.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gizmo"
//	    "github.com/gogpu/gizmo/backend/raster"
//	)
//
//	dc := gizmo.NewDrawContext()
//	dc.SetColor(gizmo.Hex("#ff8800"))
//	dc.DrawOpenCircle(gizmo.Pt(0, 0), 10)
//	dc.DrawSolidCapsuleBetween(gizmo.Pt(-5, 0), gizmo.Pt(5, 3), 1)
//
//	b := raster.New(512, 512, raster.WithScale(20))
//	if err := dc.Flush(b); err != nil {
//	    log.Fatal(err)
//	}
//	b.SavePNG("gizmos.png")
//
// # Coordinate System
//
// World space, as used by every draw call:
//   - X increases right
//   - Y increases up
//   - Angles in degrees, 0 is +X, increasing counter-clockwise
//
// Backends map world space to their device space; see ViewMatrix.
//
// # Colors
//
// Each DrawContext has a current color, white unless WithDefaultColor says
// otherwise. SetColor is itself a recorded command, so a color change only
// affects commands recorded after it. The color survives Flush. WithColor
// overrides the color of a single call without changing the current one.
//
// # Queue Retention
//
// By default Flush empties the queue (ClearAfterFlush), giving per-frame
// immediate-mode behaviour. Hosts that redraw the same scene every frame
// can pass WithRetention(RetainCommands) and call Clear when it changes.
//
// # Backends
//
// Backends live in sub-packages and register by name:
//   - backend/raster: software rasterizer producing an *image.RGBA
//   - backend/capture: records primitives for inspection and tests
//   - backend/mesh: interleaved vertex streams for GPU upload
//   - backend/ebitengine: draws onto an *ebiten.Image
//   - backend/term: previews a raster in a terminal
package gizmo
