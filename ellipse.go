package pxl

// EllipseOutlineRect draws the ellipse inscribed in r with the pen color.
// See EllipseOutlineRectColor.
func (c *Canvas) EllipseOutlineRect(r Rect) error {
	return c.EllipseOutlineRectColor(r, c.pen)
}

// EllipseOutlineRectColor draws the ellipse centered in r with radii
// Width/2 and Height/2. Nothing is drawn unless r is wider and taller
// than two pixels.
func (c *Canvas) EllipseOutlineRectColor(r Rect, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	if r.Empty() || r.Width() <= 2 || r.Height() <= 2 {
		return nil
	}
	ctr := r.Center()
	return c.EllipseOutline(ctr.X, ctr.Y, r.Width()/2, r.Height()/2, col)
}

// EllipseOutlineBox draws the ellipse inside the box with inclusive edges
// left, top, right and bottom, using the pen color.
func (c *Canvas) EllipseOutlineBox(left, top, right, bottom int) error {
	return c.EllipseOutlineRectColor(R(left, top, right, bottom), c.pen)
}

// EllipseOutline draws an axis-aligned ellipse around (cx, cy) with the
// midpoint algorithm. Both radii must be greater than 2, otherwise
// nothing is drawn.
//
// The first region walks y upwards from (rx, 0) while the slope is steeper
// than -1; the second walks x from (0, ry) for the rest of the quadrant.
// Each step is mirrored into the four quadrants.
func (c *Canvas) EllipseOutline(cx, cy, rx, ry int, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	if rx <= 2 || ry <= 2 {
		return nil
	}
	rgb := col.RGB()

	twoASquare := 2 * rx * rx
	twoBSquare := 2 * ry * ry

	x := rx
	y := 0
	xChange := ry * ry * (1 - 2*rx)
	yChange := rx * rx
	ellipseError := 0
	stoppingX := twoBSquare * rx
	stoppingY := 0

	for stoppingX >= stoppingY {
		c.plot(cx+x, cy+y, rgb)
		c.plot(cx-x, cy+y, rgb)
		c.plot(cx-x, cy-y, rgb)
		c.plot(cx+x, cy-y, rgb)

		y++
		stoppingY += twoASquare
		ellipseError += yChange
		yChange += twoASquare
		if 2*ellipseError+xChange > 0 {
			x--
			stoppingX -= twoBSquare
			ellipseError += xChange
			xChange += twoBSquare
		}
	}

	x = 0
	y = ry
	xChange = ry * ry
	yChange = rx * rx * (1 - 2*ry)
	ellipseError = 0
	stoppingX = 0
	stoppingY = twoASquare * ry

	for stoppingX <= stoppingY {
		c.plot(cx-x, cy-y, rgb)
		c.plot(cx+x, cy-y, rgb)
		c.plot(cx+x, cy+y, rgb)
		c.plot(cx-x, cy+y, rgb)

		x++
		stoppingX += twoBSquare
		ellipseError += xChange
		xChange += twoBSquare
		if 2*ellipseError+yChange > 0 {
			y--
			stoppingY -= twoASquare
			ellipseError += yChange
			yChange += twoASquare
		}
	}
	return nil
}
