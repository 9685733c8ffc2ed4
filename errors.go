package gizmo

import "errors"

// Sentinel errors returned by gizmo.
var (
	// ErrUnsupportedShape is returned by DrawColliderOutline for a collider
	// kind it cannot draw.
	ErrUnsupportedShape = errors.New("gizmo: unsupported collider shape")

	// ErrNilBackend is returned by Flush when no backend is given.
	ErrNilBackend = errors.New("gizmo: nil backend")
)
