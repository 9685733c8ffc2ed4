package gizmo

import "fmt"

// Flush replays every queued command on b in the order it was enqueued.
//
// Flush calls b.Begin, tessellates each command into primitives and hands
// them to b.DrawPrimitive, then calls b.End so the backend can restore its
// state. SetColor commands update the context color as they are reached;
// drawing commands without an override use the color current at that point.
//
// After a successful flush the queue is cleared or kept according to the
// context's RetentionPolicy. When Begin or End fails the queue is kept.
func (dc *DrawContext) Flush(b Backend) error {
	if b == nil {
		return ErrNilBackend
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()

	if err := b.Begin(); err != nil {
		return fmt.Errorf("gizmo: begin flush: %w", err)
	}

	primitives := 0
	for _, cmd := range dc.queue {
		if c, ok := cmd.(SetColorCommand); ok {
			dc.color = c.Color
			continue
		}
		meshes, override := tessellate(cmd)
		col := dc.color
		if override != nil {
			col = *override
		}
		for _, m := range meshes {
			if !m.drawable() {
				continue
			}
			b.DrawPrimitive(m.resolve(col))
			primitives++
		}
	}

	if err := b.End(); err != nil {
		return fmt.Errorf("gizmo: end flush: %w", err)
	}

	Logger().Debug("gizmo: flushed",
		"commands", len(dc.queue),
		"primitives", primitives,
		"retention", dc.retention.String())

	if dc.retention == ClearAfterFlush {
		dc.reset()
	}
	return nil
}

// Tessellate returns the meshes a drawing command produces, without color
// resolution. State commands produce no meshes.
func Tessellate(cmd Command) []Mesh {
	meshes, _ := tessellate(cmd)
	return meshes
}

// tessellate dispatches over the command type and runs the matching
// generator. It also returns the command's color override.
func tessellate(cmd Command) ([]Mesh, *Color) {
	switch c := cmd.(type) {
	case BoxCommand:
		if c.Angle == 0 {
			return []Mesh{BoxMesh(c.Center, c.Size, c.Solid)}, c.Color
		}
		return []Mesh{RectMesh(c.Center, c.Size, c.Angle, c.Solid)}, c.Color
	case BoxesCommand:
		return BoxesMeshes(c.Centers, c.Size, c.Solid, c.Colors), c.Color
	case RoundedBoxCommand:
		return []Mesh{RoundedBoxMesh(c.Center, c.Size, c.Radius, c.Angle)}, c.Color
	case LineCommand:
		return []Mesh{LineMesh(c.From, c.To)}, c.Color
	case DashedLineCommand:
		return []Mesh{DashedLineMesh(c.From, c.To, c.Dash, c.Gap)}, c.Color
	case PathCommand:
		return []Mesh{PathMesh(c.Points, c.Closed)}, c.Color
	case PolygonCommand:
		if len(c.Colors) > 0 {
			return []Mesh{MultiColorPolygonMesh(c.Points, c.Colors)}, c.Color
		}
		return []Mesh{PolygonFillMesh(c.Points)}, c.Color
	case TrianglesCommand:
		return []Mesh{TrianglesMesh(c.Points, c.Solid)}, c.Color
	case TriangleCommand:
		return []Mesh{TriangleMesh(c.Center, c.Offset, c.Height, c.Width, c.Skew, c.Angle, c.Solid)}, c.Color
	case ArcCommand:
		if c.Solid {
			return []Mesh{ArcFillMesh(c.Center, c.Radius, c.Sweep, c.Start, c.Close, c.Segments)}, c.Color
		}
		return []Mesh{ArcOutlineMesh(c.Center, c.Radius, c.Sweep, c.Start, c.Close, c.Segments, c.Dashed)}, c.Color
	case CapsuleCommand:
		return CapsuleMeshes(c.Center, c.Size, c.Direction, c.Angle, c.Solid), c.Color
	case CapsulePathCommand:
		return CapsulePathMeshes(c.Points, c.Thickness), c.Color
	case BezierCommand:
		return []Mesh{BezierMesh(c.From, c.To, c.Curve, c.Segments)}, c.Color
	}
	return nil, nil
}

// drawable reports whether m holds at least one complete primitive.
func (m Mesh) drawable() bool {
	if m.Topology == TriangleList {
		return len(m.Vertices) >= 3
	}
	return len(m.Vertices) >= 2
}
