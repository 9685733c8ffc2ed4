package gizmo

// CommandType identifies the type of a queued command.
type CommandType uint8

const (
	// State commands
	CmdSetColor CommandType = iota // Change the context color

	// Drawing commands
	CmdBox               // Box or rotated rectangle
	CmdBoxes             // Batch of equally sized boxes
	CmdRoundedBox        // Box outline with rounded corners
	CmdLine              // Single segment
	CmdDashedLine        // Dashed segment
	CmdPath              // Open or closed polyline
	CmdPolygon           // Filled polygon, optionally multi-colored
	CmdTriangles         // Raw triangle list
	CmdTriangle          // Single skewable triangle
	CmdArc               // Circle or arc, open, dashed or filled
	CmdCapsule           // Capsule from center and size
	CmdCapsulePath       // Chain of solid capsules
	CmdBezier            // Cubic Bézier curve
)

var commandTypeNames = [...]string{
	CmdSetColor:    "SetColor",
	CmdBox:         "Box",
	CmdBoxes:       "Boxes",
	CmdRoundedBox:  "RoundedBox",
	CmdLine:        "Line",
	CmdDashedLine:  "DashedLine",
	CmdPath:        "Path",
	CmdPolygon:     "Polygon",
	CmdTriangles:   "Triangles",
	CmdTriangle:    "Triangle",
	CmdArc:         "Arc",
	CmdCapsule:     "Capsule",
	CmdCapsulePath: "CapsulePath",
	CmdBezier:      "Bezier",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// Commands are plain data: they hold every parameter needed to tessellate
// the shape at flush time and nothing else.
//
// Drawing commands carry a Color override. A nil override draws with the
// context color current at the point the command executes.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// SetColorCommand replaces the context color for every later command.
type SetColorCommand struct {
	Color Color
}

// Type implements Command.
func (SetColorCommand) Type() CommandType { return CmdSetColor }

// BoxCommand draws a box of Size centered on Center, rotated by Angle degrees.
type BoxCommand struct {
	Center, Size Point
	Angle        float64
	Solid        bool
	Color        *Color
}

// Type implements Command.
func (BoxCommand) Type() CommandType { return CmdBox }

// BoxesCommand draws one box of Size per center. Colors, when non-empty,
// are cycled through per box and take precedence over Color.
type BoxesCommand struct {
	Centers []Point
	Size    Point
	Solid   bool
	Colors  []Color
	Color   *Color
}

// Type implements Command.
func (BoxesCommand) Type() CommandType { return CmdBoxes }

// RoundedBoxCommand draws the outline of a box grown outward by Radius with
// rounded corners.
type RoundedBoxCommand struct {
	Center, Size  Point
	Radius, Angle float64
	Color         *Color
}

// Type implements Command.
func (RoundedBoxCommand) Type() CommandType { return CmdRoundedBox }

// LineCommand draws a segment.
type LineCommand struct {
	From, To Point
	Color    *Color
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// DashedLineCommand draws a segment split into dashes.
type DashedLineCommand struct {
	From, To  Point
	Dash, Gap float64
	Color     *Color
}

// Type implements Command.
func (DashedLineCommand) Type() CommandType { return CmdDashedLine }

// PathCommand draws a polyline through Points.
type PathCommand struct {
	Points []Point
	Closed bool
	Color  *Color
}

// Type implements Command.
func (PathCommand) Type() CommandType { return CmdPath }

// PolygonCommand fills a polygon as a centroid fan. Colors, when non-empty,
// assigns one color per fan triangle.
type PolygonCommand struct {
	Points []Point
	Colors []Color
	Color  *Color
}

// Type implements Command.
func (PolygonCommand) Type() CommandType { return CmdPolygon }

// TrianglesCommand draws Points as independent triangles.
type TrianglesCommand struct {
	Points []Point
	Solid  bool
	Color  *Color
}

// Type implements Command.
func (TrianglesCommand) Type() CommandType { return CmdTriangles }

// TriangleCommand draws a single triangle. See TriangleMesh.
type TriangleCommand struct {
	Center, Offset             Point
	Height, Width, Skew, Angle float64
	Solid                      bool
	Color                      *Color
}

// Type implements Command.
func (TriangleCommand) Type() CommandType { return CmdTriangle }

// ArcCommand draws a circle or arc. Sweep and Start are in degrees.
// Segments <= 0 selects the automatic density.
type ArcCommand struct {
	Center        Point
	Radius        float64
	Sweep, Start  float64
	Close         ArcClose
	Segments      int
	Solid, Dashed bool
	Color         *Color
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// CapsuleCommand draws a capsule fitted to a box of Size.
type CapsuleCommand struct {
	Center, Size Point
	Direction    CapsuleDirection
	Angle        float64
	Solid        bool
	Color        *Color
}

// Type implements Command.
func (CapsuleCommand) Type() CommandType { return CmdCapsule }

// CapsulePathCommand draws a solid capsule along each segment of Points.
type CapsulePathCommand struct {
	Points    []Point
	Thickness float64
	Color     *Color
}

// Type implements Command.
func (CapsulePathCommand) Type() CommandType { return CmdCapsulePath }

// BezierCommand draws a cubic curve. See BezierPoints.
type BezierCommand struct {
	From, To Point
	Curve    float64
	Segments int
	Color    *Color
}

// Type implements Command.
func (BezierCommand) Type() CommandType { return CmdBezier }

// Compile-time interface checks.
var (
	_ Command = SetColorCommand{}
	_ Command = BoxCommand{}
	_ Command = BoxesCommand{}
	_ Command = RoundedBoxCommand{}
	_ Command = LineCommand{}
	_ Command = DashedLineCommand{}
	_ Command = PathCommand{}
	_ Command = PolygonCommand{}
	_ Command = TrianglesCommand{}
	_ Command = TriangleCommand{}
	_ Command = ArcCommand{}
	_ Command = CapsuleCommand{}
	_ Command = CapsulePathCommand{}
	_ Command = BezierCommand{}
)
