package gizmo

// PathMesh returns a line strip through points. A closed path repeats the
// first point at the end.
func PathMesh(points []Point, closed bool) Mesh {
	if len(points) == 0 {
		return Mesh{Topology: LineStrip}
	}
	n := len(points)
	if closed {
		n++
	}
	verts := make([]Point, 0, n)
	verts = append(verts, points...)
	if closed {
		verts = append(verts, points[0])
	}
	return Mesh{Topology: LineStrip, Vertices: verts}
}

// PolygonFillMesh triangulates points as a fan around their centroid.
// Non-convex polygons may produce overlapping triangles.
func PolygonFillMesh(points []Point) Mesh {
	return Mesh{Topology: TriangleList, Vertices: fan(points)}
}

// MultiColorPolygonMesh is PolygonFillMesh with one color per fan triangle,
// cycling through colors. With no colors the mesh inherits the current color.
func MultiColorPolygonMesh(points []Point, colors []Color) Mesh {
	m := PolygonFillMesh(points)
	if len(colors) == 0 || m.Empty() {
		return m
	}
	m.Colors = make([]Color, len(m.Vertices))
	for i := range m.Colors {
		m.Colors[i] = colors[(i/3)%len(colors)]
	}
	return m
}

// TrianglesMesh consumes points in groups of three. A trailing partial
// group is ignored. Open triangles are drawn as their three edges.
func TrianglesMesh(points []Point, solid bool) Mesh {
	n := len(points) / 3 * 3
	if solid {
		verts := make([]Point, n)
		copy(verts, points[:n])
		return Mesh{Topology: TriangleList, Vertices: verts}
	}
	verts := make([]Point, 0, n*2)
	for i := 0; i < n; i += 3 {
		a, b, c := points[i], points[i+1], points[i+2]
		verts = append(verts, a, b, b, c, c, a)
	}
	return Mesh{Topology: LineList, Vertices: verts}
}

// TriangleMesh builds a single triangle of the given width and height
// around center. Skew in [-1, 1] slides the apex from the left to the right
// end of the top edge; offset moves the triangle in units of half its
// height. Both are rotated by angle degrees.
func TriangleMesh(center, offset Point, height, width, skew, angle float64, solid bool) Mesh {
	apex := remap(-1, 1, 0, 1, skew)
	shift := offset.Mul(height / 2).Rotate(angle)

	local := [3]Point{
		Pt(-width/2, -height/2),
		Pt(width/2, -height/2),
		Pt(-width/2+width*apex, height/2),
	}
	var pts [3]Point
	for i, p := range local {
		pts[i] = p.Rotate(angle).Add(center).Add(shift)
	}
	return TrianglesMesh(pts[:], solid)
}
