package gizmo

import "math"

// Point represents a 2D point or vector in world space.
// The y axis points up and angles are measured in degrees,
// counter-clockwise from +X.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Unit vectors.
var (
	Right = Pt(1, 0)
	Up    = Pt(0, 1)
	Left  = Pt(-1, 0)
	Down  = Pt(0, -1)
)

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Scale multiplies each component separately.
func (p Point) Scale(sx, sy float64) Point {
	return Point{X: p.X * sx, Y: p.Y * sy}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return Point{X: p.X / length, Y: p.Y / length}
}

// Rotate returns the point rotated by deg degrees around the origin.
func (p Point) Rotate(deg float64) Point {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs unclamped linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// ClampNegative returns p with negative components replaced by zero.
func (p Point) ClampNegative() Point {
	return Point{X: math.Max(p.X, 0), Y: math.Max(p.Y, 0)}
}

// SignedAngle returns the angle in degrees that rotates from onto to,
// in the range (-180, 180]. Zero vectors yield 0.
func SignedAngle(from, to Point) float64 {
	deg := math.Atan2(from.Cross(to), from.Dot(to)) * 180 / math.Pi
	if deg <= -180 {
		deg += 360
	}
	return deg
}

// Polar returns the point at distance radius from the origin in direction deg.
func Polar(radius, deg float64) Point {
	return Right.Rotate(deg).Mul(radius)
}

// Centroid returns the arithmetic mean of points.
// It returns the zero point for an empty slice.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}
	var sum Point
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// remap maps v from [inMin, inMax] onto [outMin, outMax] without clamping.
func remap(inMin, inMax, outMin, outMax, v float64) float64 {
	t := (v - inMin) / (inMax - inMin)
	return outMin + (outMax-outMin)*t
}
