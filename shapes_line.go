package gizmo

import "math"

// LineMesh returns a single segment.
func LineMesh(from, to Point) Mesh {
	return Mesh{Topology: LineList, Vertices: []Point{from, to}}
}

// maxDashes bounds the dashes of one line; finer patterns draw nothing.
const maxDashes = 1 << 16

// DashedLineMesh splits the segment from-to into dashes of length dash
// separated by gaps of length gap. The last dash is trimmed at to.
// A non-positive dash, a negative gap or more than maxDashes dashes draws
// nothing.
func DashedLineMesh(from, to Point, dash, gap float64) Mesh {
	total := from.Distance(to)
	if dash <= 0 || gap < 0 || total == 0 {
		return Mesh{Topology: LineList}
	}
	step := dash + gap
	n := math.Ceil(total / step)
	if !(n >= 1 && n <= maxDashes) {
		return Mesh{Topology: LineList}
	}

	dir := to.Sub(from).Normalize()
	count := int(n)
	verts := make([]Point, 0, 2*count)
	for i := range count {
		d := float64(i) * step
		if d >= total {
			break
		}
		end := min(d+dash, total)
		verts = append(verts, from.Add(dir.Mul(d)), from.Add(dir.Mul(end)))
	}
	return Mesh{Topology: LineList, Vertices: verts}
}
