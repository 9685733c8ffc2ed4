// Command gizmodemo renders a gizmo scene to a PNG file or the terminal.
//
// Without -scene it draws a hue wheel: evenly spaced hues and, around the
// checked hue, where its mix with every other hue lands.
//
//	gizmodemo -out wheel.png -colors 12 -mix add
//	gizmodemo -scene shapes.toml -term
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gizmo"
	"github.com/gogpu/gizmo/backend/raster"
)

type config struct {
	scene   string
	out     string
	term    bool
	width   int
	height  int
	scale   float64
	verbose bool
	wheel   Wheel
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gizmodemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	gizmo.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	scene, err := cfg.loadScene()
	if err != nil {
		return err
	}

	dcOpts := []gizmo.ContextOption{
		gizmo.WithErrorHandler(func(err error) {
			gizmo.Logger().Warn("gizmodemo: shape skipped", "err", err)
		}),
	}
	if cfg.term {
		// Redrawn on every resize.
		dcOpts = append(dcOpts, gizmo.WithRetention(gizmo.RetainCommands))
	}
	dc := gizmo.NewDrawContext(dcOpts...)

	if err := cfg.draw(dc, scene); err != nil {
		return err
	}

	if cfg.term {
		return runTerm(cfg, scene, dc)
	}

	opts, err := rasterOptions(cfg, scene)
	if err != nil {
		return err
	}

	b := raster.New(cfg.width, cfg.height, opts...)
	if err := dc.Flush(b); err != nil {
		return err
	}
	return b.SavePNG(cfg.out)
}

func parseFlags(args []string, output io.Writer) (*config, error) {
	cfg := &config{}
	var mix string

	fs := flag.NewFlagSet("gizmodemo", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.scene, "scene", "", "TOML scene file (default: hue wheel)")
	fs.StringVar(&cfg.out, "out", "gizmo.png", "output PNG file")
	fs.BoolVar(&cfg.term, "term", false, "preview in the terminal instead of writing a file")
	fs.IntVar(&cfg.width, "width", 800, "image width")
	fs.IntVar(&cfg.height, "height", 800, "image height")
	fs.Float64Var(&cfg.scale, "scale", 0, "pixels per world unit (default: fit the scene)")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.IntVar(&cfg.wheel.Colors, "colors", 6, "hue wheel: number of hues")
	fs.Float64Var(&cfg.wheel.StartHue, "hue", 0, "hue wheel: start hue in degrees")
	fs.IntVar(&cfg.wheel.Check, "check", 0, "hue wheel: hue whose mixes are shown (-colors value shows all)")
	fs.BoolVar(&cfg.wheel.Reverse, "reverse", false, "hue wheel: counter-clockwise order")
	fs.StringVar(&mix, "mix", "multiply", "hue wheel: mix mode (multiply, add)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", cfg.width, cfg.height)
	}
	m, err := parseMixMode(strings.ToLower(mix))
	if err != nil {
		return nil, err
	}
	cfg.wheel.Mix = m
	return cfg, nil
}

func (cfg *config) loadScene() (*Scene, error) {
	if cfg.scene == "" {
		return nil, nil
	}
	return LoadScene(cfg.scene)
}

func (cfg *config) draw(dc *gizmo.DrawContext, scene *Scene) error {
	if scene == nil {
		return cfg.wheel.Draw(dc)
	}
	return scene.Draw(dc)
}

// rasterOptions builds the view. Flags win over the scene; the hue wheel
// is fitted to the smaller image side.
func rasterOptions(cfg *config, scene *Scene) ([]raster.Option, error) {
	opts := []raster.Option{raster.WithBackground(gizmo.Hex("#1e1e1e"))}

	scale := cfg.scale
	if scene != nil {
		v := scene.View
		if v.Center != nil {
			c, err := toPoint(v.Center)
			if err != nil {
				return nil, fmt.Errorf("view center: %w", err)
			}
			opts = append(opts, raster.WithCenter(c))
		}
		if v.Background != "" {
			bg, err := parseColor(v.Background)
			if err != nil {
				return nil, fmt.Errorf("view background: %w", err)
			}
			opts = append(opts, raster.WithBackground(bg))
		}
		if v.LineWidth > 0 {
			opts = append(opts, raster.WithLineWidth(v.LineWidth))
		}
		if scale == 0 {
			scale = v.Scale
		}
	}
	if scale == 0 {
		scale = float64(min(cfg.width, cfg.height)) / (2 * (wheelBound + wheelOffset))
	}
	return append(opts, raster.WithScale(scale)), nil
}
