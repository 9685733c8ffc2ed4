package gizmo

import (
	"fmt"
	"slices"
)

// ShapeKind identifies the variant held by a ColliderShape.
type ShapeKind uint8

const (
	// ShapeUnknown is the zero value; DrawColliderOutline rejects it.
	ShapeUnknown ShapeKind = iota
	// ShapeBox is a box, optionally with rounded edges.
	ShapeBox
	// ShapeComposite is a set of closed paths.
	ShapeComposite
	// ShapeCircle is a circle.
	ShapeCircle
	// ShapeCapsule is a capsule.
	ShapeCapsule
	// ShapePolygon is a closed polygon.
	ShapePolygon
	// ShapeEdgeChain is an open chain of edges.
	ShapeEdgeChain
)

var shapeKindNames = [...]string{
	ShapeUnknown:   "Unknown",
	ShapeBox:       "Box",
	ShapeComposite: "Composite",
	ShapeCircle:    "Circle",
	ShapeCapsule:   "Capsule",
	ShapePolygon:   "Polygon",
	ShapeEdgeChain: "EdgeChain",
}

// String returns the string representation of a ShapeKind.
func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// Transform places a collider in the world: it is rotated by Rotation
// degrees around its origin, then moved to Position.
type Transform struct {
	Position Point
	Rotation float64
}

// Matrix returns the collider-to-world transformation.
func (t Transform) Matrix() Matrix {
	return Translate(t.Position.X, t.Position.Y).Multiply(Rotate(t.Rotation))
}

// Apply maps a point from collider space to world space.
func (t Transform) Apply(p Point) Point {
	return t.Matrix().Apply(p)
}

// ColliderShape describes a physics collider outline. Kind selects which
// fields are meaningful:
//
//	ShapeBox        Offset, Size, EdgeRadius
//	ShapeComposite  Paths
//	ShapeCircle     Offset, Radius
//	ShapeCapsule    Offset, Size, Direction
//	ShapePolygon    Points
//	ShapeEdgeChain  Points
//
// Points are in collider space and go through Transform. Offset is added
// to Transform.Position without rotation.
// Use the constructors rather than filling the struct by hand.
type ColliderShape struct {
	Kind      ShapeKind
	Transform Transform
	Offset    Point

	Size       Point
	EdgeRadius float64
	Radius     float64
	Direction  CapsuleDirection
	Points     []Point
	Paths      [][]Point
}

// BoxCollider returns a box collider, optionally with rounded edges.
func BoxCollider(t Transform, offset, size Point, edgeRadius float64) ColliderShape {
	return ColliderShape{Kind: ShapeBox, Transform: t, Offset: offset, Size: size, EdgeRadius: edgeRadius}
}

// CompositeCollider returns a collider made of several closed paths.
func CompositeCollider(t Transform, paths ...[]Point) ColliderShape {
	return ColliderShape{Kind: ShapeComposite, Transform: t, Paths: paths}
}

// CircleCollider returns a circle collider.
func CircleCollider(t Transform, offset Point, radius float64) ColliderShape {
	return ColliderShape{Kind: ShapeCircle, Transform: t, Offset: offset, Radius: radius}
}

// CapsuleCollider returns a capsule collider.
func CapsuleCollider(t Transform, offset, size Point, dir CapsuleDirection) ColliderShape {
	return ColliderShape{Kind: ShapeCapsule, Transform: t, Offset: offset, Size: size, Direction: dir}
}

// PolygonCollider returns a closed polygon collider.
func PolygonCollider(t Transform, points []Point) ColliderShape {
	return ColliderShape{Kind: ShapePolygon, Transform: t, Points: points}
}

// EdgeCollider returns an open edge chain collider.
func EdgeCollider(t Transform, points []Point) ColliderShape {
	return ColliderShape{Kind: ShapeEdgeChain, Transform: t, Points: points}
}

// center returns the world position of the shape's origin. The offset is
// added in world space and does not turn with the collider.
func (s ColliderShape) center() Point {
	return s.Transform.Position.Add(s.Offset)
}

// worldPoints maps collider-space points to world space.
func (s ColliderShape) worldPoints(points []Point) []Point {
	m := s.Transform.Matrix()
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = m.Apply(p)
	}
	return out
}

// ColliderCommands converts a collider into the drawing commands that
// outline it (or fill it, when solid). Edge chains are never filled.
// Unknown kinds return an error wrapping ErrUnsupportedShape.
func ColliderCommands(shape ColliderShape, solid bool) ([]Command, error) {
	rot := shape.Transform.Rotation

	switch shape.Kind {
	case ShapeBox:
		cmds := []Command{BoxCommand{Center: shape.center(), Size: shape.Size, Angle: rot, Solid: solid}}
		if shape.EdgeRadius > 0 {
			cmds = append(cmds, RoundedBoxCommand{
				Center: shape.center(),
				Size:   shape.Size,
				Radius: shape.EdgeRadius,
				Angle:  rot,
			})
		}
		return cmds, nil

	case ShapeComposite:
		cmds := make([]Command, 0, len(shape.Paths))
		for _, path := range shape.Paths {
			if len(path) == 0 {
				continue
			}
			cmds = append(cmds, polygonCommand(shape.worldPoints(path), solid))
		}
		return cmds, nil

	case ShapeCircle:
		return []Command{ArcCommand{Center: shape.center(), Radius: shape.Radius, Sweep: 360, Solid: solid}}, nil

	case ShapeCapsule:
		return []Command{CapsuleCommand{
			Center:    shape.center(),
			Size:      shape.Size,
			Direction: shape.Direction,
			Angle:     rot,
			Solid:     solid,
		}}, nil

	case ShapePolygon:
		if len(shape.Points) == 0 {
			return nil, nil
		}
		return []Command{polygonCommand(shape.worldPoints(shape.Points), solid)}, nil

	case ShapeEdgeChain:
		if len(shape.Points) == 0 {
			return nil, nil
		}
		return []Command{PathCommand{Points: shape.worldPoints(shape.Points)}}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, shape.Kind)
}

func polygonCommand(points []Point, solid bool) Command {
	if solid {
		return PolygonCommand{Points: points}
	}
	return PathCommand{Points: points, Closed: true}
}

// DrawColliderOutline records the commands that draw shape.
//
// An unsupported kind enqueues nothing: the error is logged at warn level,
// passed to the context's error handler once and returned. The context
// remains usable.
func (dc *DrawContext) DrawColliderOutline(shape ColliderShape, solid bool) error {
	cmds, err := ColliderCommands(shape, solid)
	if err != nil {
		dc.report(err)
		return err
	}
	if len(cmds) == 0 {
		return nil
	}

	dc.mu.Lock()
	dc.queue = slices.Grow(dc.queue, len(cmds))
	dc.queue = append(dc.queue, cmds...)
	dc.mu.Unlock()
	return nil
}

// report logs a recoverable error and forwards it to the error handler.
func (dc *DrawContext) report(err error) {
	Logger().Warn("gizmo: draw request skipped", "error", err)
	if dc.onError != nil {
		dc.onError(err)
	}
}
