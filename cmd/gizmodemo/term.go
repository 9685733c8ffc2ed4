package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gizmo"
	"github.com/gogpu/gizmo/backend/term"
)

// runTerm shows dc in the terminal until Esc, q or Ctrl-C. The view is
// fitted to the terminal size at startup.
func runTerm(cfg *config, scene *Scene, dc *gizmo.DrawContext) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	cfg.width, cfg.height = cols, rows*2
	opts, err := rasterOptions(cfg, scene)
	if err != nil {
		return err
	}
	b := term.New(screen, opts...)

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			if err := dc.Flush(b); err != nil {
				return err
			}
		case *tcell.EventKey:
			if quitKey(ev) {
				return nil
			}
		case nil:
			return nil
		}
	}
}

func quitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
