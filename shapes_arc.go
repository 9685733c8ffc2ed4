package gizmo

import (
	"math"

	"github.com/gogpu/gizmo/internal/cache"
)

// ArcClose selects how the open ends of an arc are joined.
type ArcClose uint8

const (
	// ArcCloseNone leaves the arc open.
	ArcCloseNone ArcClose = iota
	// ArcCloseFlat joins the two ends with a chord.
	ArcCloseFlat
	// ArcCloseCenter joins both ends through the arc center (a wedge).
	ArcCloseCenter
	// ArcCloseEdge joins both ends through a corner of their bounding box,
	// cutting the slice flush with that box.
	ArcCloseEdge
)

var arcCloseNames = [...]string{
	ArcCloseNone:   "none",
	ArcCloseFlat:   "flat",
	ArcCloseCenter: "center",
	ArcCloseEdge:   "edge",
}

// String returns the lower-case name of the closure.
func (a ArcClose) String() string {
	if int(a) < len(arcCloseNames) {
		return arcCloseNames[a]
	}
	return "unknown"
}

// ParseArcClose returns the closure named s (as produced by String).
func ParseArcClose(s string) (ArcClose, bool) {
	for i, name := range arcCloseNames {
		if name == s {
			return ArcClose(i), true
		}
	}
	return ArcCloseNone, false
}

// OutlineSegments returns the automatic segment count for an arc outline.
func OutlineSegments(radius, sweep float64) int {
	return autoSegments(12, radius, sweep)
}

// FillSegments returns the automatic segment count for a filled arc.
func FillSegments(radius, sweep float64) int {
	return autoSegments(20, radius, sweep)
}

// autoSegments grows with the square root of the diameter and scales with
// the fraction of the full circle that is swept. Degenerate input gives 0.
func autoSegments(density, radius, sweep float64) int {
	if radius <= 0 || sweep == 0 {
		return 0
	}
	n := int(density * math.Sqrt(radius*2) / (360 / math.Abs(sweep)))
	if n < 0 {
		return 0
	}
	return n
}

type arcKey struct {
	sweep, start float64
	segments     int
}

// arcDirections caches unit vectors per arc layout.
var arcDirections = cache.New[arcKey, []Point](256)

// unitArc returns segments+1 shared, read-only unit vectors from start
// through start+sweep degrees.
func unitArc(sweep, start float64, segments int) []Point {
	key := arcKey{sweep: sweep, start: start, segments: segments}
	return arcDirections.GetOrCreate(key, func() []Point {
		dirs := make([]Point, 0, segments+1)
		for i := 0; i <= segments; i++ {
			dirs = append(dirs, Polar(1, sweep*float64(i)/float64(segments)+start))
		}
		return dirs
	})
}

// arcPoints samples segments+1 points on the arc, from start through
// start+sweep degrees.
func arcPoints(center Point, radius, sweep, start float64, segments int) []Point {
	dirs := unitArc(sweep, start, segments)
	pts := make([]Point, len(dirs))
	for i, d := range dirs {
		pts[i] = center.Add(d.Mul(radius))
	}
	return pts
}

// ArcOutlineMesh returns the outline of an arc of sweep degrees starting
// at start degrees. segments <= 0 selects OutlineSegments. A dashed arc
// draws every other segment.
func ArcOutlineMesh(center Point, radius, sweep, start float64, closure ArcClose, segments int, dashed bool) Mesh {
	if segments <= 0 {
		segments = OutlineSegments(radius, sweep)
	}
	topo := LineStrip
	if dashed {
		topo = LineList
	}
	if segments <= 0 || radius <= 0 {
		return Mesh{Topology: topo}
	}

	verts := arcPoints(center, radius, sweep, start, segments)
	first := verts[0]
	last := verts[len(verts)-1]

	switch closure {
	case ArcCloseFlat:
		verts = append(verts, first)
	case ArcCloseCenter:
		verts = append(verts, center, first)
	case ArcCloseEdge:
		verts = append(verts, EdgeCorner(center, first, last, sweep), first)
	}

	if dashed && len(verts)%2 == 1 {
		verts = verts[:len(verts)-1]
	}
	return Mesh{Topology: topo, Vertices: verts}
}

// ArcFillMesh returns a filled arc as a triangle fan. The fan apex is the
// center for ArcCloseNone and ArcCloseCenter, the chord midpoint for
// ArcCloseFlat and the bounding corner for ArcCloseEdge.
// segments <= 0 selects FillSegments.
func ArcFillMesh(center Point, radius, sweep, start float64, closure ArcClose, segments int) Mesh {
	if segments <= 0 {
		segments = FillSegments(radius, sweep)
	}
	if segments <= 0 || radius <= 0 {
		return Mesh{Topology: TriangleList}
	}

	rim := arcPoints(center, radius, sweep, start, segments)
	apex := center
	switch closure {
	case ArcCloseFlat:
		apex = rim[0].Lerp(rim[len(rim)-1], 0.5)
	case ArcCloseEdge:
		apex = EdgeCorner(center, rim[0], rim[len(rim)-1], sweep)
	}

	verts := make([]Point, 0, segments*3)
	for i := 0; i < segments; i++ {
		verts = append(verts, apex, rim[i], rim[i+1])
	}
	return Mesh{Topology: TriangleList, Vertices: verts}
}

// EdgeCorner returns the corner of the bounding box of p1 and p2 that is
// nearest to center when |sweep| mod 360 is at most 180 degrees, and the
// farthest corner otherwise. Ties go to the first corner in the order
// (minX,minY), (minX,maxY), (maxX,minY), (maxX,maxY).
func EdgeCorner(center, p1, p2 Point, sweep float64) Point {
	minX, maxX := math.Min(p1.X, p2.X), math.Max(p1.X, p2.X)
	minY, maxY := math.Min(p1.Y, p2.Y), math.Max(p1.Y, p2.Y)
	corners := [4]Point{
		Pt(minX, minY),
		Pt(minX, maxY),
		Pt(maxX, minY),
		Pt(maxX, maxY),
	}

	nearest := math.Mod(math.Abs(sweep), 360) <= 180
	best := 0
	bestDist := corners[0].Distance(center)
	for i := 1; i < len(corners); i++ {
		d := corners[i].Distance(center)
		if (nearest && d < bestDist) || (!nearest && d > bestDist) {
			best, bestDist = i, d
		}
	}
	return corners[best]
}
