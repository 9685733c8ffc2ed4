package gizmo

// RetentionPolicy decides what happens to the queue after a successful Flush.
type RetentionPolicy uint8

const (
	// ClearAfterFlush drops every command once it has been replayed, so each
	// frame starts from an empty queue. This is the default.
	ClearAfterFlush RetentionPolicy = iota

	// RetainCommands keeps the queue after Flush. The caller rebuilds it
	// with Clear when the scene changes.
	RetainCommands
)

// String returns the string representation of a RetentionPolicy.
func (r RetentionPolicy) String() string {
	switch r {
	case ClearAfterFlush:
		return "ClearAfterFlush"
	case RetainCommands:
		return "RetainCommands"
	default:
		return "Unknown"
	}
}

// ContextOption configures a DrawContext during creation.
//
// Example:
//
//	// Auto-cleared queue, white default color
//	dc := gizmo.NewDrawContext()
//
//	// Queue kept across frames, errors forwarded to the host
//	dc := gizmo.NewDrawContext(
//	    gizmo.WithRetention(gizmo.RetainCommands),
//	    gizmo.WithErrorHandler(func(err error) { hud.Report(err) }),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for DrawContext creation.
type contextOptions struct {
	color     Color
	retention RetentionPolicy
	onError   func(error)
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		color:     White,
		retention: ClearAfterFlush,
	}
}

// WithDefaultColor sets the color used by drawing commands that run before
// any SetColor.
func WithDefaultColor(c Color) ContextOption {
	return func(o *contextOptions) {
		o.color = c
	}
}

// WithRetention sets the queue retention policy applied after Flush.
func WithRetention(r RetentionPolicy) ContextOption {
	return func(o *contextOptions) {
		o.retention = r
	}
}

// WithErrorHandler registers a function that receives every recoverable
// error reported by the context, such as ErrUnsupportedShape.
// The handler is called synchronously from the drawing goroutine.
func WithErrorHandler(fn func(error)) ContextOption {
	return func(o *contextOptions) {
		o.onError = fn
	}
}

// DrawOption adjusts a single draw call.
// Options that do not apply to a shape are ignored.
type DrawOption func(*drawOptions)

type drawOptions struct {
	color    *Color
	segments int
	closure  ArcClose
	curve    float64
}

func newDrawOptions(opts []DrawOption) drawOptions {
	o := drawOptions{curve: DefaultCurve}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithColor draws the shape in c instead of the context color. The context
// color itself is left unchanged.
func WithColor(c Color) DrawOption {
	return func(o *drawOptions) {
		o.color = &c
	}
}

// WithSegments fixes the tessellation segment count for circles, arcs and
// Bézier curves. n <= 0 restores the automatic count.
func WithSegments(n int) DrawOption {
	return func(o *drawOptions) {
		o.segments = n
	}
}

// WithArcClose selects how the ends of an arc are joined.
// The default is ArcCloseNone; filled arcs then fan out from the center.
func WithArcClose(c ArcClose) DrawOption {
	return func(o *drawOptions) {
		o.closure = c
	}
}

// WithCurve sets the Bézier curve parameter in [-1, 1].
// The default is DefaultCurve.
func WithCurve(curve float64) DrawOption {
	return func(o *drawOptions) {
		o.curve = curve
	}
}
