package gizmo

import (
	"slices"
	"sync"
)

// DrawContext collects gizmo draw requests and replays them on a Backend.
//
// Draw methods only record a command; no geometry is computed until Flush.
// The context owns its command queue and its current color, so independent
// contexts never observe each other's state.
//
// A DrawContext is safe for concurrent use: Enqueue, Flush and Clear are
// serialised by one mutex. A Backend must not call back into the context
// that is flushing it.
type DrawContext struct {
	mu    sync.Mutex
	queue []Command

	// color is written only by executed SetColorCommands.
	color Color

	retention RetentionPolicy
	onError   func(error)
}

// NewDrawContext creates an empty context.
//
//	dc := gizmo.NewDrawContext()
//	dc.SetColor(gizmo.Red)
//	dc.DrawOpenCircle(gizmo.Pt(0, 0), 10)
//	err := dc.Flush(backend)
func NewDrawContext(opts ...ContextOption) *DrawContext {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	return &DrawContext{
		queue:     make([]Command, 0, 64),
		color:     options.color,
		retention: options.retention,
		onError:   options.onError,
	}
}

// Color returns the context color as of the last Flush.
func (dc *DrawContext) Color() Color {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return dc.color
}

// Retention returns the queue retention policy.
func (dc *DrawContext) Retention() RetentionPolicy {
	return dc.retention
}

// SetColor records a color change. It applies to every later command that
// has no color override of its own, from the moment it executes. The
// color persists across flushes until changed again.
func (dc *DrawContext) SetColor(c Color) {
	dc.Enqueue(SetColorCommand{Color: c})
}

// DrawOpenBox draws the outline of an axis-aligned box.
func (dc *DrawContext) DrawOpenBox(center, size Point, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(BoxCommand{Center: center, Size: size, Color: o.color})
}

// DrawSolidBox fills an axis-aligned box.
func (dc *DrawContext) DrawSolidBox(center, size Point, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(BoxCommand{Center: center, Size: size, Solid: true, Color: o.color})
}

// DrawOpenBoxes draws one box outline of the given size per center.
// Colors, when given, are cycled through per box.
func (dc *DrawContext) DrawOpenBoxes(centers []Point, size Point, colors []Color, opts ...DrawOption) {
	dc.drawBoxes(centers, size, false, colors, opts)
}

// DrawSolidBoxes fills one box of the given size per center.
// Colors, when given, are cycled through per box.
func (dc *DrawContext) DrawSolidBoxes(centers []Point, size Point, colors []Color, opts ...DrawOption) {
	dc.drawBoxes(centers, size, true, colors, opts)
}

func (dc *DrawContext) drawBoxes(centers []Point, size Point, solid bool, colors []Color, opts []DrawOption) {
	if len(centers) == 0 {
		return
	}
	o := newDrawOptions(opts)
	dc.Enqueue(BoxesCommand{
		Centers: slices.Clone(centers),
		Size:    size,
		Solid:   solid,
		Colors:  slices.Clone(colors),
		Color:   o.color,
	})
}

// DrawBoxEdgeRadius draws the outline of a box grown outward by radius,
// with rounded corners.
func (dc *DrawContext) DrawBoxEdgeRadius(center, size Point, radius float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(RoundedBoxCommand{Center: center, Size: size, Radius: radius, Color: o.color})
}

// DrawOpenRect draws the outline of a box rotated by angle degrees.
func (dc *DrawContext) DrawOpenRect(center, size Point, angle float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(BoxCommand{Center: center, Size: size, Angle: angle, Color: o.color})
}

// DrawSolidRect fills a box rotated by angle degrees.
func (dc *DrawContext) DrawSolidRect(center, size Point, angle float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(BoxCommand{Center: center, Size: size, Angle: angle, Solid: true, Color: o.color})
}

// DrawLine draws a segment.
func (dc *DrawContext) DrawLine(from, to Point, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(LineCommand{From: from, To: to, Color: o.color})
}

// DrawDashedLine draws a segment as dashes of length dash separated by gap.
func (dc *DrawContext) DrawDashedLine(from, to Point, dash, gap float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(DashedLineCommand{From: from, To: to, Dash: dash, Gap: gap, Color: o.color})
}

// DrawPath draws a polyline through points. A closed path returns to the
// first point.
func (dc *DrawContext) DrawPath(points []Point, closed bool, opts ...DrawOption) {
	if len(points) == 0 {
		return
	}
	o := newDrawOptions(opts)
	dc.Enqueue(PathCommand{Points: slices.Clone(points), Closed: closed, Color: o.color})
}

// DrawOpenPolygon draws the closed outline of a polygon.
func (dc *DrawContext) DrawOpenPolygon(points []Point, opts ...DrawOption) {
	dc.DrawPath(points, true, opts...)
}

// DrawSolidPolygon fills a polygon as a fan around its centroid.
// Non-convex polygons may overdraw.
func (dc *DrawContext) DrawSolidPolygon(points []Point, opts ...DrawOption) {
	if len(points) == 0 {
		return
	}
	o := newDrawOptions(opts)
	dc.Enqueue(PolygonCommand{Points: slices.Clone(points), Color: o.color})
}

// DrawMultiColoredPolygon fills a polygon giving each fan triangle the next
// color of colors, wrapping around. The number of colors need not match
// the number of points.
func (dc *DrawContext) DrawMultiColoredPolygon(points []Point, colors []Color) {
	if len(points) == 0 {
		return
	}
	dc.Enqueue(PolygonCommand{Points: slices.Clone(points), Colors: slices.Clone(colors)})
}

// DrawOpenTriangles draws the edges of every full group of three points.
func (dc *DrawContext) DrawOpenTriangles(points []Point, opts ...DrawOption) {
	dc.drawTriangles(points, false, opts)
}

// DrawSolidTriangles fills every full group of three points.
func (dc *DrawContext) DrawSolidTriangles(points []Point, opts ...DrawOption) {
	dc.drawTriangles(points, true, opts)
}

func (dc *DrawContext) drawTriangles(points []Point, solid bool, opts []DrawOption) {
	if len(points) < 3 {
		return
	}
	o := newDrawOptions(opts)
	dc.Enqueue(TrianglesCommand{Points: slices.Clone(points), Solid: solid, Color: o.color})
}

// DrawOpenTriangle draws the outline of a single triangle. See TriangleMesh
// for the meaning of offset and skew.
func (dc *DrawContext) DrawOpenTriangle(center, offset Point, height, width, skew, angle float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(TriangleCommand{
		Center: center, Offset: offset,
		Height: height, Width: width, Skew: skew, Angle: angle,
		Color: o.color,
	})
}

// DrawSolidTriangle fills a single triangle. See TriangleMesh.
func (dc *DrawContext) DrawSolidTriangle(center, offset Point, height, width, skew, angle float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(TriangleCommand{
		Center: center, Offset: offset,
		Height: height, Width: width, Skew: skew, Angle: angle,
		Solid: true,
		Color: o.color,
	})
}

// DrawOpenCircle draws a circle outline. Use WithSegments to override the
// automatic density.
func (dc *DrawContext) DrawOpenCircle(center Point, radius float64, opts ...DrawOption) {
	dc.drawArc(center, radius, 360, 0, false, false, opts)
}

// DrawDashedCircle draws every other segment of a circle outline.
func (dc *DrawContext) DrawDashedCircle(center Point, radius float64, opts ...DrawOption) {
	dc.drawArc(center, radius, 360, 0, false, true, opts)
}

// DrawSolidCircle fills a circle.
func (dc *DrawContext) DrawSolidCircle(center Point, radius float64, opts ...DrawOption) {
	dc.drawArc(center, radius, 360, 0, true, false, opts)
}

// DrawOpenArc draws an arc of sweep degrees counter-clockwise from start
// degrees. Use WithArcClose to join its ends.
func (dc *DrawContext) DrawOpenArc(center Point, radius, sweep, start float64, opts ...DrawOption) {
	dc.drawArc(center, radius, sweep, start, false, false, opts)
}

// DrawSolidArc fills an arc of sweep degrees counter-clockwise from start
// degrees. WithArcClose selects the fan apex.
func (dc *DrawContext) DrawSolidArc(center Point, radius, sweep, start float64, opts ...DrawOption) {
	dc.drawArc(center, radius, sweep, start, true, false, opts)
}

func (dc *DrawContext) drawArc(center Point, radius, sweep, start float64, solid, dashed bool, opts []DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(ArcCommand{
		Center:   center,
		Radius:   radius,
		Sweep:    sweep,
		Start:    start,
		Close:    o.closure,
		Segments: o.segments,
		Solid:    solid,
		Dashed:   dashed,
		Color:    o.color,
	})
}

// DrawOpenCapsule draws the outline of a capsule fitted to a size box
// centered on center and rotated by angle degrees.
func (dc *DrawContext) DrawOpenCapsule(center, size Point, dir CapsuleDirection, angle float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(CapsuleCommand{Center: center, Size: size, Direction: dir, Angle: angle, Color: o.color})
}

// DrawSolidCapsule fills a capsule fitted to a size box.
func (dc *DrawContext) DrawSolidCapsule(center, size Point, dir CapsuleDirection, angle float64, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(CapsuleCommand{Center: center, Size: size, Direction: dir, Angle: angle, Solid: true, Color: o.color})
}

// DrawOpenCapsuleBetween draws the outline of a capsule whose arc centers
// are from and to.
func (dc *DrawContext) DrawOpenCapsuleBetween(from, to Point, radius float64, opts ...DrawOption) {
	center, size, angle := CapsuleBetween(from, to, radius)
	dc.DrawOpenCapsule(center, size, CapsuleVertical, angle, opts...)
}

// DrawSolidCapsuleBetween fills a capsule whose arc centers are from and to.
func (dc *DrawContext) DrawSolidCapsuleBetween(from, to Point, radius float64, opts ...DrawOption) {
	center, size, angle := CapsuleBetween(from, to, radius)
	dc.DrawSolidCapsule(center, size, CapsuleVertical, angle, opts...)
}

// DrawCapsulePath draws a thick polyline as one solid capsule per segment.
func (dc *DrawContext) DrawCapsulePath(points []Point, thickness float64, opts ...DrawOption) {
	if len(points) < 2 || thickness <= 0 {
		return
	}
	o := newDrawOptions(opts)
	dc.Enqueue(CapsulePathCommand{Points: slices.Clone(points), Thickness: thickness, Color: o.color})
}

// DrawBezier draws a cubic curve from from to to. WithCurve bends it and
// WithSegments overrides the automatic sample count.
func (dc *DrawContext) DrawBezier(from, to Point, opts ...DrawOption) {
	o := newDrawOptions(opts)
	dc.Enqueue(BezierCommand{From: from, To: to, Curve: o.curve, Segments: o.segments, Color: o.color})
}
