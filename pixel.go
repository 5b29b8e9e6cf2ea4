package pxl

import "github.com/pxlforge/pxl/internal/pixel"

// Clear fills the whole canvas with the pen color, ignoring the clip rectangle.
func (c *Canvas) Clear() error {
	return c.ClearColor(c.pen)
}

// ClearColor fills the whole canvas with col, ignoring the clip rectangle.
func (c *Canvas) ClearColor(col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	rgb := col.RGB()
	for y := 0; y < c.height; y++ {
		row := y * c.stride
		c.writer.WriteRun(c.block[row:], c.width, rgb)
	}
	return nil
}

// SetPixel plots (x, y) with the pen color. See SetPixelColor.
func (c *Canvas) SetPixel(x, y int) error {
	return c.SetPixelColor(x, y, c.pen)
}

// SetPixelColor plots (x, y) with col and moves the cursor there.
// A pixel outside the clip rectangle is skipped without error and
// leaves the cursor where it was.
func (c *Canvas) SetPixelColor(x, y int, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	c.plot(x, y, col.RGB())
	return nil
}

// plot writes one pixel if it is inside the clip rectangle.
// The canvas must be allocated.
func (c *Canvas) plot(x, y int, rgb RGB) {
	if !c.clipRect.Contains(x, y) {
		return
	}
	c.writer.Write(c.block[c.offset(x, y):], rgb)
	c.cursor = Point{X: x, Y: y}
}

// Pixel reads back the color stored at (x, y). The clip rectangle is not consulted.
func (c *Canvas) Pixel(x, y int) (Color, error) {
	off, err := c.PixelOffset(x, y)
	if err != nil {
		return Black, err
	}
	return Color(pixel.Pack(c.writer.Read(c.block[off:]))), nil
}

// MoveTo moves the cursor to p without drawing.
func (c *Canvas) MoveTo(p Point) error {
	if c.Empty() {
		return ErrInvalidState
	}
	c.cursor = p
	return nil
}

// MoveToXY moves the cursor to (x, y) without drawing.
func (c *Canvas) MoveToXY(x, y int) error {
	return c.MoveTo(Point{X: x, Y: y})
}
