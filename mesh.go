package gizmo

import "github.com/gogpu/gputypes"

// Topology describes how a vertex sequence is assembled into primitives.
type Topology uint8

const (
	// LineStrip connects every vertex to the next one.
	LineStrip Topology = iota
	// LineList draws an independent segment per vertex pair.
	LineList
	// TriangleList draws an independent triangle per vertex triple.
	TriangleList
)

var topologyNames = [...]string{
	LineStrip:    "LineStrip",
	LineList:     "LineList",
	TriangleList: "TriangleList",
}

// String returns the string representation of a Topology.
func (t Topology) String() string {
	if int(t) < len(topologyNames) {
		return topologyNames[t]
	}
	return "Unknown"
}

// GPU returns the WebGPU primitive topology matching t.
func (t Topology) GPU() gputypes.PrimitiveTopology {
	switch t {
	case LineStrip:
		return gputypes.PrimitiveTopologyLineStrip
	case LineList:
		return gputypes.PrimitiveTopologyLineList
	default:
		return gputypes.PrimitiveTopologyTriangleList
	}
}

// IsLine reports whether t describes line primitives.
func (t Topology) IsLine() bool {
	return t == LineStrip || t == LineList
}

// Mesh is the output of a geometry generator: a vertex sequence plus the
// topology it must be assembled with.
//
// Colors is nil for meshes drawn in a single color. Otherwise it holds one
// color per vertex.
type Mesh struct {
	Topology Topology
	Vertices []Point
	Colors   []Color
}

// Empty reports whether the mesh has no vertices to draw.
func (m Mesh) Empty() bool {
	return len(m.Vertices) == 0
}

// Primitive is a mesh with every vertex color resolved, ready for a Backend.
type Primitive struct {
	Topology Topology
	Vertices []Point
	// Colors has the same length as Vertices.
	Colors []Color
}

// resolve turns a mesh into a primitive, filling in c where the mesh
// carries no per-vertex colors.
func (m Mesh) resolve(c Color) Primitive {
	colors := m.Colors
	if len(colors) != len(m.Vertices) {
		colors = make([]Color, len(m.Vertices))
		for i := range colors {
			colors[i] = c
		}
	}
	return Primitive{Topology: m.Topology, Vertices: m.Vertices, Colors: colors}
}

// fan triangulates points around their centroid.
// Only star-shaped input produces non-overlapping triangles.
func fan(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	center := Centroid(points)
	out := make([]Point, 0, len(points)*3)
	for i := range points {
		out = append(out, center, points[i], points[(i+1)%len(points)])
	}
	return out
}
