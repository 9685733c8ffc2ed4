// Package capture provides a backend that records every primitive it
// receives, in order, for inspection.
//
// It is the reference backend for tests: flushing a DrawContext into a
// capture backend shows exactly what a rendering backend would be asked
// to draw.
//
//	import _ "github.com/gogpu/gizmo/backend/capture"
//
//	b := capture.New()
//	dc.Flush(b)
//	for _, p := range b.Primitives() {
//	    fmt.Println(p.Topology, len(p.Vertices))
//	}
package capture

import (
	"slices"
	"sync"

	"github.com/gogpu/gizmo"
)

func init() {
	gizmo.Register("capture", func(int, int) gizmo.Backend {
		return New()
	})
}

// Pass is the set of primitives received between one Begin and End.
type Pass struct {
	Primitives []gizmo.Primitive
	Ended      bool
}

// Backend records primitives. It is safe for concurrent use.
type Backend struct {
	mu     sync.Mutex
	passes []Pass
	active bool
}

var _ gizmo.Backend = (*Backend)(nil)

// New creates an empty capture backend.
func New() *Backend {
	return &Backend{}
}

// Begin starts a new pass.
func (b *Backend) Begin() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.passes = append(b.passes, Pass{})
	b.active = true
	return nil
}

// DrawPrimitive records a copy of p in the current pass. Primitives drawn
// outside Begin/End open an implicit pass.
func (b *Backend) DrawPrimitive(p gizmo.Primitive) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		b.passes = append(b.passes, Pass{})
		b.active = true
	}
	cur := &b.passes[len(b.passes)-1]
	cur.Primitives = append(cur.Primitives, gizmo.Primitive{
		Topology: p.Topology,
		Vertices: slices.Clone(p.Vertices),
		Colors:   slices.Clone(p.Colors),
	})
}

// End closes the current pass.
func (b *Backend) End() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active {
		b.passes[len(b.passes)-1].Ended = true
	}
	b.active = false
	return nil
}

// Passes returns every pass recorded so far.
func (b *Backend) Passes() []Pass {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.passes)
}

// Primitives returns the primitives of the most recent pass.
func (b *Backend) Primitives() []gizmo.Primitive {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.passes) == 0 {
		return nil
	}
	return slices.Clone(b.passes[len(b.passes)-1].Primitives)
}

// VertexCount returns the number of vertices in the most recent pass.
func (b *Backend) VertexCount() int {
	n := 0
	for _, p := range b.Primitives() {
		n += len(p.Vertices)
	}
	return n
}

// Reset drops everything recorded.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.passes = nil
	b.active = false
}
