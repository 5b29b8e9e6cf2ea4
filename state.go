package pxl

// PushClipRect saves the current clip rectangle and replaces it with r
// clamped to the canvas bounds. It does nothing on an empty canvas.
func (c *Canvas) PushClipRect(r Rect) {
	if c.Empty() {
		return
	}
	c.clipStack.Push(c.clipRect)
	c.clipRect = c.AdjustToBounds(r)
}

// PushClip saves the current clip rectangle without changing it.
func (c *Canvas) PushClip() {
	if c.Empty() {
		return
	}
	c.clipStack.Push(c.clipRect)
}

// PopClipRect restores the most recently saved clip rectangle.
// With nothing saved it does nothing.
func (c *Canvas) PopClipRect() {
	if c.Empty() {
		return
	}
	if r, ok := c.clipStack.Pop(); ok {
		c.clipRect = r
	}
}

// ClipDepth returns the number of saved clip rectangles.
func (c *Canvas) ClipDepth() int {
	return c.clipStack.Depth()
}

// PushPenColor saves the current pen color and replaces it with col.
// It does nothing on an empty canvas.
func (c *Canvas) PushPenColor(col Color) {
	if c.Empty() {
		return
	}
	c.penStack.Push(c.pen)
	c.pen = col
}

// PushPen saves the current pen color without changing it.
func (c *Canvas) PushPen() {
	if c.Empty() {
		return
	}
	c.penStack.Push(c.pen)
}

// PopPenColor restores the most recently saved pen color.
// With nothing saved it does nothing.
func (c *Canvas) PopPenColor() {
	if c.Empty() {
		return
	}
	if col, ok := c.penStack.Pop(); ok {
		c.pen = col
	}
}

// PenDepth returns the number of saved pen colors.
func (c *Canvas) PenDepth() int {
	return c.penStack.Depth()
}
