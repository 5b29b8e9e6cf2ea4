package pxl

// CircleOutline draws a circle of the given radius around center with the pen color.
func (c *Canvas) CircleOutline(center Point, radius int) error {
	return c.CircleOutlineColor(center, radius, c.pen)
}

// CircleOutlineRect draws the largest circle centered in r with the pen color:
// the center is r.Center() and the radius is min(Width, Height)/2.
func (c *Canvas) CircleOutlineRect(r Rect) error {
	if c.Empty() {
		return ErrInvalidState
	}
	if r.Empty() {
		return nil
	}
	return c.CircleOutlineColor(r.Center(), min(r.Width(), r.Height())/2, c.pen)
}

// CircleOutlineColor draws a circle outline with the midpoint algorithm.
//
// The four axis points are plotted first, then each step of the first
// octant is mirrored into all eight octants. A negative radius draws nothing.
func (c *Canvas) CircleOutlineColor(center Point, radius int, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	if radius < 0 {
		return nil
	}
	rgb := col.RGB()
	cx, cy := center.X, center.Y

	f := 1 - radius
	ddFx := 1
	ddFy := -2 * radius
	x := 0
	y := radius

	c.plot(cx, cy+radius, rgb)
	c.plot(cx, cy-radius, rgb)
	c.plot(cx+radius, cy, rgb)
	c.plot(cx-radius, cy, rgb)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}
		x++
		ddFx += 2
		f += ddFx

		c.plot(cx+x, cy+y, rgb)
		c.plot(cx-x, cy+y, rgb)
		c.plot(cx+x, cy-y, rgb)
		c.plot(cx-x, cy-y, rgb)
		c.plot(cx+y, cy+x, rgb)
		c.plot(cx-y, cy+x, rgb)
		c.plot(cx+y, cy-x, rgb)
		c.plot(cx-y, cy-x, rgb)
	}
	return nil
}
