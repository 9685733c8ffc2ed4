package gizmo

// Backend is the interface that rendering backends implement.
// A Backend receives fully tessellated primitives; it never sees commands.
//
// Flush drives a backend through one pass:
//  1. Begin binds the backend state (render target, blending, transform)
//  2. DrawPrimitive is called once per primitive, in command order
//  3. End flushes pending work and restores the state Begin changed
//
// Backends are created directly from their packages or by name through the
// registry. Packages register themselves in init():
//
//	func init() {
//	    gizmo.Register("raster", func(w, h int) gizmo.Backend {
//	        return raster.New(w, h)
//	    })
//	}
type Backend interface {
	// Begin prepares the backend for a pass.
	Begin() error

	// DrawPrimitive draws one primitive with its per-vertex colors.
	// The slices are only valid for the duration of the call.
	DrawPrimitive(p Primitive)

	// End finishes the pass.
	End() error
}

// BackendFunc adapts a function to a Backend with no-op Begin and End.
type BackendFunc func(Primitive)

// Begin implements Backend.
func (BackendFunc) Begin() error { return nil }

// DrawPrimitive implements Backend.
func (f BackendFunc) DrawPrimitive(p Primitive) { f(p) }

// End implements Backend.
func (BackendFunc) End() error { return nil }

var _ Backend = BackendFunc(nil)
