package pxl

// RectFill fills r with the pen color. See RectFillColor.
func (c *Canvas) RectFill(r Rect) error {
	return c.RectFillColor(r, c.pen)
}

// RectFillColor fills the part of r inside the clip rectangle with col.
// Edges are inclusive: a Rect from (2,2) to (4,4) fills nine pixels.
func (c *Canvas) RectFillColor(r Rect, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	r = c.AdjustToClipRect(r)
	if r.Empty() {
		return nil
	}

	rgb := col.RGB()
	width := r.Width()
	end := r.Top + r.Height()
	for y := r.Top; y < end; y++ {
		c.writer.WriteRun(c.block[c.offset(r.Left, y):], width, rgb)
	}
	return nil
}

// RectOutline draws the border of r with the pen color.
func (c *Canvas) RectOutline(r Rect) error {
	return c.RectOutlineColor(r, c.pen)
}

// RectOutlineColor draws the four edges of r with col, corners included.
func (c *Canvas) RectOutlineColor(r Rect, col Color) error {
	edges := [4][2]Point{
		{{r.Left, r.Top}, {r.Right, r.Top}},
		{{r.Right, r.Top}, {r.Right, r.Bottom}},
		{{r.Left, r.Bottom}, {r.Right, r.Bottom}},
		{{r.Left, r.Top}, {r.Left, r.Bottom}},
	}
	for _, e := range edges {
		if err := c.LineColor(e[0], e[1], col); err != nil {
			return err
		}
	}
	return nil
}

// Frame3D draws a beveled border around r. A raised frame is light on the
// left and top edges and dark on the bottom and right; a sunken frame
// swaps the two colors. An empty r draws nothing.
func (c *Canvas) Frame3D(r Rect, light, dark Color, raised bool) error {
	if c.Empty() {
		return ErrInvalidState
	}
	if r.Empty() {
		return nil
	}
	if !raised {
		light, dark = dark, light
	}

	lines := [4]struct {
		p0, p1 Point
		col    Color
	}{
		{Pt(r.Left, r.Bottom), Pt(r.Left, r.Top), light},
		{Pt(r.Left+1, r.Top), Pt(r.Right, r.Top), light},
		{Pt(r.Left+1, r.Bottom), Pt(r.Right, r.Bottom), dark},
		{Pt(r.Right, r.Bottom-1), Pt(r.Right, r.Top+1), dark},
	}
	for _, l := range lines {
		if err := c.LineColor(l.p0, l.p1, l.col); err != nil {
			return err
		}
	}
	return nil
}

// Frame3DFill draws Frame3D and then fills the interior, r inset by two
// pixels on every side, with fill. The fill is skipped when nothing is left.
func (c *Canvas) Frame3DFill(r Rect, light, dark, fill Color, raised bool) error {
	if err := c.Frame3D(r, light, dark, raised); err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}
	inner := r.Inset(2)
	if inner.Empty() {
		return nil
	}
	return c.RectFillColor(inner, fill)
}

// PolyOutline connects pts with lines in the pen color. See PolyOutlineColor.
func (c *Canvas) PolyOutline(pts []Point) error {
	return c.PolyOutlineColor(pts, c.pen)
}

// PolyOutlineColor moves to pts[0] and draws LineTo each following point
// with col. The shape is not closed. Fewer than two points draw nothing.
// The pen color is restored afterwards.
func (c *Canvas) PolyOutlineColor(pts []Point, col Color) error {
	if len(pts) < 2 {
		return nil
	}
	saved := c.pen
	c.pen = col
	defer func() { c.pen = saved }()

	if err := c.MoveTo(pts[0]); err != nil {
		return err
	}
	for _, p := range pts[1:] {
		if err := c.LineTo(p); err != nil {
			return err
		}
	}
	return nil
}
