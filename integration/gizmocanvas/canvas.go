package gizmocanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/gizmo"
	"github.com/gogpu/gizmo/backend/raster"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gizmocanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gizmocanvas: invalid dimensions")

	// ErrNilContext is returned when Render is given a nil DrawContext.
	ErrNilContext = errors.New("gizmocanvas: nil draw context")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas renders gizmos into an image and keeps a GPU texture of it.
type Canvas struct {
	backend     *raster.Backend
	opts        []raster.Option
	texture     gpucontext.Texture
	oldTexture  gpucontext.Texture // awaiting deferred destruction
	dirty       bool
	sizeChanged bool
	closed      bool
}

// New creates a width x height canvas. The raster options configure the
// view, line width and background of the backing image.
func New(width, height int, opts ...raster.Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	gizmo.Logger().Info("gizmocanvas: created", "width", width, "height", height)
	return &Canvas{
		backend: raster.New(width, height, opts...),
		opts:    opts,
		dirty:   true,
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(width, height int, opts ...raster.Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Backend returns the raster backend holding the canvas image.
// Returns nil if the canvas is closed.
func (c *Canvas) Backend() *raster.Backend {
	if c.closed {
		return nil
	}
	return c.backend
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	if c.backend == nil {
		return 0
	}
	return c.backend.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	if c.backend == nil {
		return 0
	}
	return c.backend.Height()
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.Width(), c.Height()
}

// Render flushes dc into the canvas image and marks the canvas dirty.
func (c *Canvas) Render(dc *gizmo.DrawContext) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if dc == nil {
		return ErrNilContext
	}
	if err := dc.Flush(c.backend); err != nil {
		return fmt.Errorf("gizmocanvas: render failed: %w", err)
	}
	c.dirty = true
	return nil
}

// MarkDirty flags the canvas for GPU upload on the next RenderTo.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty reports whether the image has changes not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Resize changes the canvas dimensions. The image is replaced and cleared.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.Width() == width && c.Height() == height {
		return nil
	}

	c.backend = raster.New(width, height, c.opts...)
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Texture returns the current GPU texture, or nil before the first RenderTo.
func (c *Canvas) Texture() gpucontext.Texture {
	return c.texture
}

// Close releases the textures. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	destroy(c.oldTexture)
	destroy(c.texture)
	c.oldTexture = nil
	c.texture = nil
	c.backend = nil
	return nil
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
