// Package surface holds the drawing surface the bokeh field paints on, along
// with the compositing style (opacity and clip inset) used when the surface
// is placed on screen.
package surface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
)

// MaxDimension is the largest width or height a canvas accepts.
const MaxDimension = 16384

// ErrTooLarge is returned when a container exceeds MaxDimension.
var ErrTooLarge = errors.New("canvas exceeds maximum dimension")

// Size is a rendered size in pixels.
type Size struct {
	Width, Height int
}

// Canvas is a CPU raster surface backed by a gg context.
type Canvas struct {
	dc    *gg.Context
	style Style
}

// New creates a canvas of the given size. Dimensions are clamped to
// [1, MaxDimension].
func New(s Size) *Canvas {
	s = clampSize(s)
	return &Canvas{
		dc:    gg.NewContext(s.Width, s.Height),
		style: Style{Opacity: 1},
	}
}

func clampSize(s Size) Size {
	if s.Width < 1 {
		s.Width = 1
	}
	if s.Height < 1 {
		s.Height = 1
	}
	s.Width = min(s.Width, MaxDimension)
	s.Height = min(s.Height, MaxDimension)
	return s
}

// Resize makes the pixel size match the container's rendered size.
// The pixel buffer is reallocated only when the size actually changes.
func (c *Canvas) Resize(container Size) error {
	if container.Width > MaxDimension || container.Height > MaxDimension {
		return fmt.Errorf("resize canvas to %dx%d: %w", container.Width, container.Height, ErrTooLarge)
	}
	s := clampSize(container)
	if err := c.dc.Resize(s.Width, s.Height); err != nil {
		return fmt.Errorf("resize canvas to %dx%d: %w", s.Width, s.Height, err)
	}
	gg.Logger().Debug("canvas resized", "width", s.Width, "height", s.Height)
	return nil
}

// Clear erases the whole surface to transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// Context returns the gg context to draw on.
func (c *Canvas) Context() *gg.Context { return c.dc }

func (c *Canvas) Size() Size {
	return Size{Width: c.dc.Width(), Height: c.dc.Height()}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Pixels returns the premultiplied RGBA bytes of the current frame.
func (c *Canvas) Pixels() []byte {
	return c.dc.ResizeTarget().Data()
}

func (c *Canvas) Style() Style { return c.style }

func (c *Canvas) SetOpacity(o float64) { c.style.Opacity = o }

func (c *Canvas) SetClip(in Inset) { c.style.Clip = in }

// Close releases the gg context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
