package gizmo

// RoundedCornerSegments is the number of segments used for each quarter
// circle of a rounded box outline.
const RoundedCornerSegments = 8

// RectCorners returns the corners of a size box centered on center and
// rotated by angle degrees, ordered top-right, top-left, bottom-left,
// bottom-right.
func RectCorners(center, size Point, angle float64) [4]Point {
	hx, hy := size.X/2, size.Y/2
	return [4]Point{
		Pt(hx, hy).Rotate(angle).Add(center),
		Pt(-hx, hy).Rotate(angle).Add(center),
		Pt(-hx, -hy).Rotate(angle).Add(center),
		Pt(hx, -hy).Rotate(angle).Add(center),
	}
}

// BoxMesh returns an axis-aligned box. Open boxes are a closed line strip,
// solid boxes a centroid fan.
func BoxMesh(center, size Point, solid bool) Mesh {
	return RectMesh(center, size, 0, solid)
}

// RectMesh returns a box rotated by angle degrees.
func RectMesh(center, size Point, angle float64, solid bool) Mesh {
	c := RectCorners(center, size, angle)
	if solid {
		return PolygonFillMesh(c[:])
	}
	return PathMesh(c[:], true)
}

// RoundedBoxMesh returns the outline of a box grown outward by radius, with
// rounded corners. The box is rotated by angle degrees around center.
// The radius is used as given; it is never shrunk to fit the box.
func RoundedBoxMesh(center, size Point, radius, angle float64) Mesh {
	if radius <= 0 {
		return Mesh{Topology: LineStrip}
	}

	c := RectCorners(center, size, angle)
	tr, tl, bl, br := c[0], c[1], c[2], c[3]

	// Each side is a pair of tangent points followed by the quarter arc
	// around the next corner, starting at dir and turning 90 degrees.
	sides := []struct {
		from, to Point
		dir      Point
		corner   Point
	}{
		{tr, tl, Up, tl},
		{tl, bl, Left, bl},
		{bl, br, Down, br},
		{br, tr, Right, tr},
	}

	verts := make([]Point, 0, 4*(RoundedCornerSegments+3))
	for _, s := range sides {
		offset := s.dir.Rotate(angle).Mul(radius)
		verts = append(verts, s.from.Add(offset), s.to.Add(offset))
		for i := 0; i <= RoundedCornerSegments; i++ {
			step := 90 * float64(i) / RoundedCornerSegments
			verts = append(verts, s.dir.Rotate(step+angle).Mul(radius).Add(s.corner))
		}
	}
	return Mesh{Topology: LineStrip, Vertices: verts}
}

// BoxesMeshes returns one box per center. Colors are cycled through when
// given; otherwise the boxes inherit the current color.
func BoxesMeshes(centers []Point, size Point, solid bool, colors []Color) []Mesh {
	if len(centers) == 0 {
		return nil
	}
	meshes := make([]Mesh, 0, len(centers))
	for i, center := range centers {
		m := BoxMesh(center, size, solid)
		if len(colors) > 0 {
			m.Colors = uniform(colors[i%len(colors)], len(m.Vertices))
		}
		meshes = append(meshes, m)
	}
	return meshes
}

func uniform(c Color, n int) []Color {
	out := make([]Color, n)
	for i := range out {
		out[i] = c
	}
	return out
}
