package main

import (
	"fmt"
	"math"

	"github.com/gogpu/gizmo"
)

// MixMode selects how two wheel colors are combined.
type MixMode uint8

const (
	// MixMultiply multiplies the channels (subtractive mixing).
	MixMultiply MixMode = iota
	// MixAdd adds the channels, clamped (additive mixing).
	MixAdd
)

func (m MixMode) String() string {
	if m == MixAdd {
		return "add"
	}
	return "multiply"
}

func parseMixMode(s string) (MixMode, error) {
	switch s {
	case "multiply":
		return MixMultiply, nil
	case "add":
		return MixAdd, nil
	}
	return 0, fmt.Errorf("unknown mix mode %q", s)
}

// Wheel geometry, in world units.
const (
	wheelBound   = 4.5
	wheelOffset  = 0.25
	wheelMaxSize = 1.25
)

// Wheel draws evenly spaced hues on a circle and, for one or all of them,
// the mix with every other hue placed by its own hue and strength.
type Wheel struct {
	Colors   int     // number of hues, at least 2
	StartHue float64 // hue of the top swatch in degrees
	Check    int     // swatch whose mixes are shown; Colors shows all
	Reverse  bool    // lay hues out counter-clockwise
	Mix      MixMode
}

// Draw enqueues the wheel on dc.
func (w Wheel) Draw(dc *gizmo.DrawContext) error {
	if w.Colors < 2 {
		return fmt.Errorf("wheel needs at least 2 colors, got %d", w.Colors)
	}
	n := float64(w.Colors)

	r := (wheelBound - wheelOffset) * math.Pi / (n + math.Pi)
	r = min(max(r*0.95, 0), wheelMaxSize)
	radius := wheelBound - wheelOffset - r
	mixRadius := r * 0.33

	for k := range w.Colors {
		frac := float64(k) / n
		dc.SetColor(w.hue(frac))
		dc.DrawSolidCircle(w.place(radius, frac*360), r)
	}

	for k := range w.Colors {
		if k != w.Check && w.Check != w.Colors {
			continue
		}
		frac := float64(k) / n
		c := w.hue(frac)
		pos := w.place(radius, frac*360)

		for m := 1; m < w.Colors; m++ {
			other := frac + float64(m)/n
			cb := w.hue(other)

			// The mixed color sits at its own hue, as far out as its value
			// (multiply) or saturation (add).
			mixed := w.mix(c, cb)
			h, sat, val := mixed.HSV()
			dist := radius * val
			if w.Mix == MixAdd {
				dist = radius * sat
			}
			posM := w.place(dist, h-w.StartHue)
			posB := w.place(radius, other*360)

			dc.SetColor(gizmo.Black.WithAlpha(0.75))
			dc.DrawLine(pos, posM)
			dc.DrawLine(posM, posB)

			dc.SetColor(gizmo.Black)
			dc.DrawSolidCircle(posM, mixRadius*1.1)

			dc.SetColor(mixed)
			dc.DrawSolidCircle(posM, mixRadius)
		}
	}
	return nil
}

func (w Wheel) hue(frac float64) gizmo.Color {
	return gizmo.FromHSV(frac*360+w.StartHue, 1, 1)
}

func (w Wheel) mix(a, b gizmo.Color) gizmo.Color {
	if w.Mix == MixAdd {
		return a.Add(b)
	}
	return a.Mul(b)
}

// place returns the point dist above the wheel center, turned by angle
// degrees clockwise (counter-clockwise when reversed).
func (w Wheel) place(dist, angle float64) gizmo.Point {
	if !w.Reverse {
		angle = -angle
	}
	return gizmo.Up.Mul(dist).Rotate(angle).Add(gizmo.Up.Mul(wheelOffset))
}
