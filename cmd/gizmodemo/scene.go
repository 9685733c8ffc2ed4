package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"

	"github.com/gogpu/gizmo"
)

var errBadPoint = errors.New("want an [x, y] pair")

// Scene is a TOML description of a gizmo drawing.
//
//	[view]
//	center = [0, 0]
//	scale = 40
//	background = "#202020"
//
//	[[shape]]
//	kind = "circle"
//	center = [0, 1]
//	radius = 2
//	solid = true
//	color = "tomato"
type Scene struct {
	View   View    `toml:"view"`
	Shapes []Shape `toml:"shape"`
}

// View sets up the raster backend.
type View struct {
	Center     []float64 `toml:"center"`
	Scale      float64   `toml:"scale"`
	Background string    `toml:"background"`
	LineWidth  float64   `toml:"line_width"`
}

// Shape is one draw request. Which fields apply depends on Kind.
type Shape struct {
	Kind  string `toml:"kind"`
	Color string `toml:"color"`
	Solid bool   `toml:"solid"`

	Center []float64   `toml:"center"`
	Size   []float64   `toml:"size"`
	Offset []float64   `toml:"offset"`
	From   []float64   `toml:"from"`
	To     []float64   `toml:"to"`
	Points [][]float64 `toml:"points"`
	Colors []string    `toml:"colors"`

	Angle      float64 `toml:"angle"`
	Radius     float64 `toml:"radius"`
	EdgeRadius float64 `toml:"edge_radius"`
	Sweep      float64 `toml:"sweep"`
	Start      float64 `toml:"start"`
	Close      string  `toml:"close"`
	Segments   int     `toml:"segments"`
	Dashed     bool    `toml:"dashed"`
	Closed     bool    `toml:"closed"`
	Dash       float64 `toml:"dash"`
	Gap        float64 `toml:"gap"`
	Height     float64 `toml:"height"`
	Width      float64 `toml:"width"`
	Skew       float64 `toml:"skew"`
	Direction  string  `toml:"direction"`
	Thickness  float64 `toml:"thickness"`

	// Curve is optional; unset means gizmo.DefaultCurve.
	Curve *float64 `toml:"curve"`

	// Collider fields.
	Collider string    `toml:"collider"`
	Position []float64 `toml:"position"`
	Rotation float64   `toml:"rotation"`
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScene parses a TOML scene.
func ParseScene(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if s.View.Scale < 0 || s.View.LineWidth < 0 {
		return nil, errors.New("view: negative scale or line width")
	}
	return &s, nil
}

// Draw enqueues every shape of the scene on dc. It stops at the first
// invalid shape; shapes before it stay enqueued.
func (s *Scene) Draw(dc *gizmo.DrawContext) error {
	for i := range s.Shapes {
		if err := s.Shapes[i].draw(dc); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, s.Shapes[i].Kind, err)
		}
	}
	return nil
}

func (sh *Shape) draw(dc *gizmo.DrawContext) error {
	opts, err := sh.options()
	if err != nil {
		return err
	}

	// Malformed pairs are reported by field name.
	var center, size, offset, from, to gizmo.Point
	fields := []struct {
		name string
		raw  []float64
		dst  *gizmo.Point
	}{
		{"center", sh.Center, &center},
		{"size", sh.Size, &size},
		{"offset", sh.Offset, &offset},
		{"from", sh.From, &from},
		{"to", sh.To, &to},
	}
	for _, f := range fields {
		if f.raw == nil {
			continue
		}
		if *f.dst, err = toPoint(f.raw); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	points, err := toPoints(sh.Points)
	if err != nil {
		return err
	}

	switch sh.Kind {
	case "box":
		switch {
		case sh.EdgeRadius > 0:
			dc.DrawBoxEdgeRadius(center, size, sh.EdgeRadius, opts...)
		case sh.Angle != 0 && sh.Solid:
			dc.DrawSolidRect(center, size, sh.Angle, opts...)
		case sh.Angle != 0:
			dc.DrawOpenRect(center, size, sh.Angle, opts...)
		case sh.Solid:
			dc.DrawSolidBox(center, size, opts...)
		default:
			dc.DrawOpenBox(center, size, opts...)
		}
	case "boxes":
		colors, err := parseColors(sh.Colors)
		if err != nil {
			return err
		}
		if sh.Solid {
			dc.DrawSolidBoxes(points, size, colors, opts...)
		} else {
			dc.DrawOpenBoxes(points, size, colors, opts...)
		}
	case "line":
		dc.DrawLine(from, to, opts...)
	case "dashed_line":
		dc.DrawDashedLine(from, to, sh.Dash, sh.Gap, opts...)
	case "path":
		dc.DrawPath(points, sh.Closed, opts...)
	case "polygon":
		switch {
		case len(sh.Colors) > 0:
			colors, err := parseColors(sh.Colors)
			if err != nil {
				return err
			}
			dc.DrawMultiColoredPolygon(points, colors)
		case sh.Solid:
			dc.DrawSolidPolygon(points, opts...)
		default:
			dc.DrawOpenPolygon(points, opts...)
		}
	case "triangles":
		if sh.Solid {
			dc.DrawSolidTriangles(points, opts...)
		} else {
			dc.DrawOpenTriangles(points, opts...)
		}
	case "triangle":
		if sh.Solid {
			dc.DrawSolidTriangle(center, offset, sh.Height, sh.Width, sh.Skew, sh.Angle, opts...)
		} else {
			dc.DrawOpenTriangle(center, offset, sh.Height, sh.Width, sh.Skew, sh.Angle, opts...)
		}
	case "circle":
		switch {
		case sh.Solid:
			dc.DrawSolidCircle(center, sh.Radius, opts...)
		case sh.Dashed:
			dc.DrawDashedCircle(center, sh.Radius, opts...)
		default:
			dc.DrawOpenCircle(center, sh.Radius, opts...)
		}
	case "arc":
		if sh.Solid {
			dc.DrawSolidArc(center, sh.Radius, sh.Sweep, sh.Start, opts...)
		} else {
			dc.DrawOpenArc(center, sh.Radius, sh.Sweep, sh.Start, opts...)
		}
	case "capsule":
		if sh.From != nil && sh.To != nil {
			if sh.Solid {
				dc.DrawSolidCapsuleBetween(from, to, sh.Radius, opts...)
			} else {
				dc.DrawOpenCapsuleBetween(from, to, sh.Radius, opts...)
			}
			return nil
		}
		dir, err := parseDirection(sh.Direction)
		if err != nil {
			return err
		}
		if sh.Solid {
			dc.DrawSolidCapsule(center, size, dir, sh.Angle, opts...)
		} else {
			dc.DrawOpenCapsule(center, size, dir, sh.Angle, opts...)
		}
	case "capsule_path":
		dc.DrawCapsulePath(points, sh.Thickness, opts...)
	case "bezier":
		dc.DrawBezier(from, to, opts...)
	case "collider":
		shape, err := sh.collider(offset, size, points)
		if err != nil {
			return err
		}
		// Collider outlines take no options; the color becomes the
		// context color for the shapes that follow.
		if sh.Color != "" {
			c, _ := parseColor(sh.Color)
			dc.SetColor(c)
		}
		return dc.DrawColliderOutline(shape, sh.Solid)
	default:
		return fmt.Errorf("unknown kind %q", sh.Kind)
	}
	return nil
}

func (sh *Shape) options() ([]gizmo.DrawOption, error) {
	var opts []gizmo.DrawOption
	if sh.Color != "" {
		c, err := parseColor(sh.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gizmo.WithColor(c))
	}
	if sh.Segments > 0 {
		opts = append(opts, gizmo.WithSegments(sh.Segments))
	}
	if sh.Close != "" {
		c, ok := gizmo.ParseArcClose(sh.Close)
		if !ok {
			return nil, fmt.Errorf("unknown arc closure %q", sh.Close)
		}
		opts = append(opts, gizmo.WithArcClose(c))
	}
	if sh.Curve != nil {
		opts = append(opts, gizmo.WithCurve(*sh.Curve))
	}
	return opts, nil
}

func (sh *Shape) collider(offset, size gizmo.Point, points []gizmo.Point) (gizmo.ColliderShape, error) {
	var t gizmo.Transform
	if sh.Position != nil {
		p, err := toPoint(sh.Position)
		if err != nil {
			return gizmo.ColliderShape{}, fmt.Errorf("position: %w", err)
		}
		t.Position = p
	}
	t.Rotation = sh.Rotation

	switch sh.Collider {
	case "box":
		return gizmo.BoxCollider(t, offset, size, sh.EdgeRadius), nil
	case "circle":
		return gizmo.CircleCollider(t, offset, sh.Radius), nil
	case "capsule":
		dir, err := parseDirection(sh.Direction)
		if err != nil {
			return gizmo.ColliderShape{}, err
		}
		return gizmo.CapsuleCollider(t, offset, size, dir), nil
	case "polygon":
		return gizmo.PolygonCollider(t, points), nil
	case "edge":
		return gizmo.EdgeCollider(t, points), nil
	case "composite":
		return gizmo.CompositeCollider(t, points), nil
	}
	// Unknown collider kinds reach DrawColliderOutline and are reported there.
	return gizmo.ColliderShape{Transform: t}, nil
}

// parseColor accepts "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" or an SVG
// color name.
func parseColor(s string) (gizmo.Color, error) {
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return gizmo.Color{}, fmt.Errorf("bad hex color %q", s)
		}
		for _, r := range hex {
			if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
				return gizmo.Color{}, fmt.Errorf("bad hex color %q", s)
			}
		}
		return gizmo.Hex(hex), nil
	}
	c, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return gizmo.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return gizmo.FromColor(c), nil
}

func parseColors(names []string) ([]gizmo.Color, error) {
	colors := make([]gizmo.Color, 0, len(names))
	for _, n := range names {
		c, err := parseColor(n)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parseDirection(s string) (gizmo.CapsuleDirection, error) {
	switch s {
	case "", "vertical":
		return gizmo.CapsuleVertical, nil
	case "horizontal":
		return gizmo.CapsuleHorizontal, nil
	}
	return 0, fmt.Errorf("unknown capsule direction %q", s)
}

func toPoint(v []float64) (gizmo.Point, error) {
	if len(v) != 2 {
		return gizmo.Point{}, errBadPoint
	}
	return gizmo.Pt(v[0], v[1]), nil
}

func toPoints(vs [][]float64) ([]gizmo.Point, error) {
	pts := make([]gizmo.Point, 0, len(vs))
	for i, v := range vs {
		p, err := toPoint(v)
		if err != nil {
			return nil, fmt.Errorf("points[%d]: %w", i, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}
