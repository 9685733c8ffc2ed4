package gizmo

import "math"

// CapsuleDirection is the long axis of a capsule before rotation.
type CapsuleDirection uint8

const (
	// CapsuleVertical puts the rounded ends at the top and bottom.
	CapsuleVertical CapsuleDirection = iota
	// CapsuleHorizontal puts the rounded ends at the left and right.
	CapsuleHorizontal
)

// String returns "vertical" or "horizontal".
func (d CapsuleDirection) String() string {
	if d == CapsuleHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// CapsuleMeshes returns a capsule fitted to a size box centered on center
// and rotated by angle degrees. The rounded ends are half circles whose
// radius is half the cross-axis size; they sit max(0, long-cross)/2 from
// the center along the long axis.
//
// Open capsules are two arcs joined by two tangent segments. Solid
// capsules are two filled half circles and the filled rectangle between
// them.
func CapsuleMeshes(center, size Point, dir CapsuleDirection, angle float64, solid bool) []Mesh {
	var radius, long, cross, startAngle float64
	var axis Point
	if dir == CapsuleVertical {
		radius, long, cross = size.X/2, size.Y, size.X
		startAngle, axis = angle, Up
	} else {
		radius, long, cross = size.Y/2, size.X, size.Y
		startAngle, axis = 90+angle, Left
	}
	if radius <= 0 {
		return nil
	}

	offset := axis.Rotate(angle).Mul(math.Max(0, long-cross) / 2)
	headCenter := center.Add(offset)
	tailCenter := center.Sub(offset)

	if !solid {
		return []Mesh{
			ArcOutlineMesh(headCenter, radius, 180, startAngle, ArcCloseNone, 0, false),
			ArcOutlineMesh(tailCenter, radius, 180, 180+startAngle, ArcCloseNone, 0, false),
			LineMesh(headCenter.Add(Polar(radius, 180+startAngle)), tailCenter.Add(Polar(radius, 180+startAngle))),
			LineMesh(headCenter.Add(Polar(radius, startAngle)), tailCenter.Add(Polar(radius, startAngle))),
		}
	}

	body := size.Sub(Up.Mul(radius * 2)).ClampNegative()
	if dir == CapsuleHorizontal {
		body = size.Sub(Right.Mul(radius * 2)).ClampNegative()
	}
	meshes := []Mesh{
		ArcFillMesh(headCenter, radius, 180, startAngle, ArcCloseCenter, 0),
		ArcFillMesh(tailCenter, radius, 180, 180+startAngle, ArcCloseCenter, 0),
	}
	if body.X > 0 && body.Y > 0 {
		meshes = append(meshes, RectMesh(center, body, angle, true))
	}
	return meshes
}

// CapsuleBetween converts a capsule spanning from and to with the given
// radius into the center, size and angle form used by CapsuleMeshes.
// The result is always CapsuleVertical.
func CapsuleBetween(from, to Point, radius float64) (center, size Point, angle float64) {
	center = from.Lerp(to, 0.5)
	size = Pt(radius*2, from.Distance(to)+radius*2)
	angle = SignedAngle(Up, from.Sub(center))
	return center, size, angle
}

// CapsulePathMeshes draws a solid capsule of the given thickness along each
// segment of points.
func CapsulePathMeshes(points []Point, thickness float64) []Mesh {
	if len(points) < 2 || thickness <= 0 {
		return nil
	}
	var meshes []Mesh
	for i := 1; i < len(points); i++ {
		center, size, angle := CapsuleBetween(points[i-1], points[i], thickness/2)
		meshes = append(meshes, CapsuleMeshes(center, size, CapsuleVertical, angle, true)...)
	}
	return meshes
}
