package pxl

// EndpointMode selects how Line plots the endpoints of x-major lines,
// those whose horizontal extent exceeds their vertical extent.
//
// Line steps along the major axis and never plots the two endpoints from
// inside its stepping loop. Y-major lines always plot both endpoints once
// the loop is done; for x-major lines that depends on the mode. The mode
// only decides endpoints: interior pixels are the same in both, with every
// octant stepping its minor axis toward the target.
type EndpointMode uint8

const (
	// EndpointsClosed plots both endpoints of every line. This is the default.
	EndpointsClosed EndpointMode = iota

	// EndpointsLegacy leaves out both endpoints of x-major lines, so a
	// horizontal line from (0,0) to (5,0) lights only x = 1..4.
	EndpointsLegacy
)

// String returns the mode name.
func (m EndpointMode) String() string {
	switch m {
	case EndpointsClosed:
		return "closed"
	case EndpointsLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Line draws from p0 to p1 with the pen color.
func (c *Canvas) Line(p0, p1 Point) error {
	return c.LineColor(p0, p1, c.pen)
}

// LineXY draws from (x0, y0) to (x1, y1) with the pen color.
func (c *Canvas) LineXY(x0, y0, x1, y1 int) error {
	return c.LineColor(Point{X: x0, Y: y0}, Point{X: x1, Y: y1}, c.pen)
}

// LineTo draws from the cursor to p with the pen color and leaves the cursor at p.
func (c *Canvas) LineTo(p Point) error {
	if err := c.LineColor(c.cursor, p, c.pen); err != nil {
		return err
	}
	c.cursor = p
	return nil
}

// LineToXY draws from the cursor to (x, y). See LineTo.
func (c *Canvas) LineToXY(x, y int) error {
	return c.LineTo(Point{X: x, Y: y})
}

// LineColor draws a Bresenham line from p0 to p1 with col.
// Every pixel goes through the clip test of SetPixelColor.
func (c *Canvas) LineColor(p0, p1 Point, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	rgb := col.RGB()

	dx := abs(p1.X - p0.X)
	dy := abs(p1.Y - p0.Y)

	if dy < dx {
		if p1.X >= p0.X {
			c.stepXRight(p0, p1, dx, dy, rgb)
		} else {
			c.stepXLeft(p0, p1, dx, dy, rgb)
		}
		if c.endpoints == EndpointsLegacy {
			return nil
		}
	} else {
		if p1.Y >= p0.Y {
			c.stepYDown(p0, p1, dx, dy, rgb)
		} else {
			c.stepYUp(p0, p1, dx, dy, rgb)
		}
	}

	c.plot(p0.X, p0.Y, rgb)
	c.plot(p1.X, p1.Y, rgb)
	return nil
}

// stepXRight walks x from p0.X up to p1.X (exclusive), skipping both endpoints.
func (c *Canvas) stepXRight(p0, p1 Point, dx, dy int, rgb RGB) {
	next := p0
	ystep := sign(p1.Y - p0.Y)
	e := dx / 2
	for next.X < p1.X {
		if next != p0 && next != p1 {
			c.plot(next.X, next.Y, rgb)
		}
		next.X++
		e -= dy
		if e < 0 {
			next.Y += ystep
			e += dx
		}
	}
}

// stepXLeft walks x from p0.X down to p1.X (exclusive), skipping both endpoints.
func (c *Canvas) stepXLeft(p0, p1 Point, dx, dy int, rgb RGB) {
	next := p0
	ystep := sign(p1.Y - p0.Y)
	e := dx / 2
	for next.X > p1.X {
		if next != p0 && next != p1 {
			c.plot(next.X, next.Y, rgb)
		}
		next.X--
		e -= dy
		if e < 0 {
			next.Y += ystep
			e += dx
		}
	}
}

// stepYDown walks y from p0.Y up to p1.Y (exclusive), skipping both endpoints.
func (c *Canvas) stepYDown(p0, p1 Point, dx, dy int, rgb RGB) {
	next := p0
	xstep := sign(p1.X - p0.X)
	e := dy / 2
	for next.Y < p1.Y {
		if next != p0 && next != p1 {
			c.plot(next.X, next.Y, rgb)
		}
		next.Y++
		e -= dx
		if e < 0 {
			next.X += xstep
			e += dy
		}
	}
}

// stepYUp walks y from p0.Y down to p1.Y (exclusive), skipping both endpoints.
func (c *Canvas) stepYUp(p0, p1 Point, dx, dy int, rgb RGB) {
	next := p0
	xstep := sign(p1.X - p0.X)
	e := dy / 2
	for next.Y > p1.Y {
		if next != p0 && next != p1 {
			c.plot(next.X, next.Y, rgb)
		}
		next.Y--
		e -= dx
		if e < 0 {
			next.X += xstep
			e += dy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
