package gizmo

import "math"

// DefaultCurve is the curve parameter used when a Bézier is drawn without one.
const DefaultCurve = 0.75

// BezierSegments returns the automatic sample count for a curve parameter:
// clamp(25^(|curve|^(1/8)), 1, 75). Nearly straight curves get very few
// samples, sharp ones many. The formula is empirical.
func BezierSegments(curve float64) int {
	n := math.Pow(25, math.Pow(math.Abs(curve), 1.0/8))
	return int(math.Min(math.Max(n, 1), 75))
}

// BezierControls derives the two inner control points of the cubic curve
// from from to to. Both lie on the line between the elbow corners
// (from.X, to.Y) and (to.X, from.Y), placed symmetrically around its
// midpoint at curve remapped from [-1, 1] to [0, 1].
func BezierControls(from, to Point, curve float64) (c1, c2 Point) {
	t := remap(-1, 1, 0, 1, curve)
	elbowA := Pt(from.X, to.Y)
	elbowB := Pt(to.X, from.Y)
	return elbowA.Lerp(elbowB, t), elbowA.Lerp(elbowB, 1-t)
}

// BezierPoints samples the curve uniformly in t. segments <= 0 selects
// BezierSegments(curve). The last point is always exactly to.
func BezierPoints(from, to Point, curve float64, segments int) []Point {
	if segments <= 0 {
		segments = BezierSegments(curve)
	}
	c1, c2 := BezierControls(from, to, curve)

	pts := make([]Point, 0, segments+1)
	for i := 0; i < segments; i++ {
		pts = append(pts, cubicAt(from, c1, c2, to, float64(i)/float64(segments)))
	}
	return append(pts, to)
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// BezierMesh returns the sampled curve as an open line strip.
func BezierMesh(from, to Point, curve float64, segments int) Mesh {
	return PathMesh(BezierPoints(from, to, curve, segments), false)
}
