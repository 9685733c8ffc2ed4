package gizmocanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ErrInvalidRenderer is returned when the draw target has no texture creator.
var ErrInvalidRenderer = errors.New("gizmocanvas: draw target has no gpucontext.TextureCreator")

// RenderTo uploads the canvas image if needed and draws it at (0, 0).
//
// The td parameter should be obtained from gogpu.Context.AsTextureDrawer():
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(td gpucontext.TextureDrawer) error {
	return c.RenderToPosition(td, 0, 0)
}

// RenderToPosition is like RenderTo but draws the texture at (x, y).
func (c *Canvas) RenderToPosition(td gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := c.upload(td); err != nil {
		return err
	}
	return td.DrawTexture(c.texture, x, y)
}

// upload creates or updates the texture from the canvas image.
func (c *Canvas) upload(td gpucontext.TextureDrawer) error {
	// The old texture may still be referenced by in-flight command buffers.
	// It is destroyed only after the replacement upload has waited for the GPU.
	if c.sizeChanged {
		if c.texture != nil {
			destroy(c.oldTexture)
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if !c.dirty && c.texture != nil {
		return nil
	}

	data := c.backend.Image().Pix

	if c.texture == nil {
		creator := td.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		tex, err := creator.NewTextureFromRGBA(c.Width(), c.Height(), data)
		if err != nil {
			return fmt.Errorf("gizmocanvas: NewTextureFromRGBA failed: %w", err)
		}
		// image.RGBA pixels are premultiplied.
		if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}
		c.texture = tex

		destroy(c.oldTexture)
		c.oldTexture = nil
		c.dirty = false
		return nil
	}

	if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return fmt.Errorf("gizmocanvas: texture update failed: %w", err)
		}
	}
	c.dirty = false
	return nil
}
