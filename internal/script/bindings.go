package script

import (
	"fmt"

	rt "github.com/arnodel/golua/runtime"

	"github.com/pxlforge/pxl"
)

// registerFunctions installs the drawing globals.
//
// Colors are Lua integers holding a packed pxl.Color. Functions taking an
// optional trailing color use the pen when it is omitted.
func (s *Runtime) registerFunctions() {
	// Canvas state
	s.setGoFunction("width", s.width, 0, false)
	s.setGoFunction("height", s.height, 0, false)
	s.setGoFunction("clear", s.clear, 0, true)
	s.setGoFunction("pen", s.pen, 0, true)
	s.setGoFunction("push_pen", s.pushPen, 0, true)
	s.setGoFunction("pop_pen", s.popPen, 0, false)
	s.setGoFunction("push_clip", s.pushClip, 4, false)
	s.setGoFunction("pop_clip", s.popClip, 0, false)

	// Drawing
	s.setGoFunction("pixel", s.pixel, 2, true)
	s.setGoFunction("move_to", s.moveTo, 2, false)
	s.setGoFunction("line_to", s.lineTo, 2, false)
	s.setGoFunction("line", s.line, 4, true)
	s.setGoFunction("rect", s.rect, 4, true)
	s.setGoFunction("fill", s.fill, 4, true)
	s.setGoFunction("frame3d", s.frame3d, 7, true)
	s.setGoFunction("poly", s.poly, 1, true)
	s.setGoFunction("circle", s.circle, 3, true)
	s.setGoFunction("ellipse", s.ellipse, 4, true)
	s.setGoFunction("text", s.text, 3, true)

	// Colors
	s.setGoFunction("rgb", s.rgb, 3, false)
	s.setGoFunction("color", s.color, 1, false)
	s.setGoFunction("lighten", s.lighten, 2, false)
	s.setGoFunction("darken", s.darken, 2, false)
}

// getAllArgs combines Args() and Etc() to get all arguments including varargs.
func getAllArgs(c *rt.GoCont) []rt.Value {
	return append(c.Args(), c.Etc()...)
}

func getIntArg(args []rt.Value, idx int) (int, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("argument %d out of range (have %d)", idx+1, len(args))
	}
	if i, ok := args[idx].TryInt(); ok {
		return int(i), nil
	}
	if f, ok := args[idx].TryFloat(); ok {
		return int(f), nil
	}
	return 0, fmt.Errorf("argument %d is not a number", idx+1)
}

func getFloatArg(args []rt.Value, idx int) (float64, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("argument %d out of range (have %d)", idx+1, len(args))
	}
	if f, ok := args[idx].TryFloat(); ok {
		return f, nil
	}
	if i, ok := args[idx].TryInt(); ok {
		return float64(i), nil
	}
	return 0, fmt.Errorf("argument %d is not a number", idx+1)
}

func getStringArg(args []rt.Value, idx int) (string, error) {
	if idx >= len(args) {
		return "", fmt.Errorf("argument %d out of range (have %d)", idx+1, len(args))
	}
	if s, ok := args[idx].TryString(); ok {
		return s, nil
	}
	return "", fmt.Errorf("argument %d is not a string", idx+1)
}

// getInts reads n integer arguments starting at 0.
func getInts(args []rt.Value, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		v, err := getIntArg(args, i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// getColorArg reads a color at idx, falling back to def when it is absent or nil.
func getColorArg(args []rt.Value, idx int, def pxl.Color) (pxl.Color, error) {
	if idx >= len(args) || args[idx].IsNil() {
		return def, nil
	}
	v, err := getIntArg(args, idx)
	if err != nil {
		return 0, err
	}
	return pxl.Color(uint32(v)), nil
}

func getBoolArg(args []rt.Value, idx int, def bool) bool {
	if idx >= len(args) || args[idx].IsNil() {
		return def
	}
	if b, ok := args[idx].TryBool(); ok {
		return b
	}
	return true
}

func colorValue(c pxl.Color) rt.Value {
	return rt.IntValue(int64(c))
}

// --- Canvas state ---

func (s *Runtime) width(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(s.canvas.Width()))), nil
}

func (s *Runtime) height(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(s.canvas.Height()))), nil
}

// clear handles clear([color])
func (s *Runtime) clear(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	col, err := getColorArg(getAllArgs(c), 0, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("clear: %w", err)
	}
	if err := s.canvas.ClearColor(col); err != nil {
		return nil, fmt.Errorf("clear: %w", err)
	}
	return c.Next(), nil
}

// pen handles pen([color]) and returns the pen color before the call.
func (s *Runtime) pen(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	prev := s.canvas.Pen()
	col, err := getColorArg(getAllArgs(c), 0, prev)
	if err != nil {
		return nil, fmt.Errorf("pen: %w", err)
	}
	s.canvas.SetPen(col)
	return c.PushingNext1(t.Runtime, colorValue(prev)), nil
}

// pushPen handles push_pen([color])
func (s *Runtime) pushPen(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	if len(args) == 0 || args[0].IsNil() {
		s.canvas.PushPen()
		return c.Next(), nil
	}
	col, err := getColorArg(args, 0, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("push_pen: %w", err)
	}
	s.canvas.PushPenColor(col)
	return c.Next(), nil
}

func (s *Runtime) popPen(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s.canvas.PopPenColor()
	return c.Next(), nil
}

// pushClip handles push_clip(left, top, right, bottom)
func (s *Runtime) pushClip(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	v, err := getInts(getAllArgs(c), 4)
	if err != nil {
		return nil, fmt.Errorf("push_clip: %w", err)
	}
	s.canvas.PushClipRect(pxl.R(v[0], v[1], v[2], v[3]))
	return c.Next(), nil
}

func (s *Runtime) popClip(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	s.canvas.PopClipRect()
	return c.Next(), nil
}

// --- Drawing ---

// pixel handles pixel(x, y [, color])
func (s *Runtime) pixel(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	v, err := getInts(args, 2)
	if err != nil {
		return nil, fmt.Errorf("pixel: %w", err)
	}
	col, err := getColorArg(args, 2, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("pixel: %w", err)
	}
	if err := s.canvas.SetPixelColor(v[0], v[1], col); err != nil {
		return nil, fmt.Errorf("pixel: %w", err)
	}
	return c.Next(), nil
}

// moveTo handles move_to(x, y)
func (s *Runtime) moveTo(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	v, err := getInts(getAllArgs(c), 2)
	if err != nil {
		return nil, fmt.Errorf("move_to: %w", err)
	}
	if err := s.canvas.MoveToXY(v[0], v[1]); err != nil {
		return nil, fmt.Errorf("move_to: %w", err)
	}
	return c.Next(), nil
}

// lineTo handles line_to(x, y) with the pen color.
func (s *Runtime) lineTo(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	v, err := getInts(getAllArgs(c), 2)
	if err != nil {
		return nil, fmt.Errorf("line_to: %w", err)
	}
	if err := s.canvas.LineToXY(v[0], v[1]); err != nil {
		return nil, fmt.Errorf("line_to: %w", err)
	}
	return c.Next(), nil
}

// line handles line(x0, y0, x1, y1 [, color])
func (s *Runtime) line(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	v, err := getInts(args, 4)
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	col, err := getColorArg(args, 4, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	if err := s.canvas.LineColor(pxl.Pt(v[0], v[1]), pxl.Pt(v[2], v[3]), col); err != nil {
		return nil, fmt.Errorf("line: %w", err)
	}
	return c.Next(), nil
}

// rectArgs reads left, top, right, bottom and an optional color at index 4.
func (s *Runtime) rectArgs(args []rt.Value) (pxl.Rect, pxl.Color, error) {
	v, err := getInts(args, 4)
	if err != nil {
		return pxl.EmptyRect, 0, err
	}
	col, err := getColorArg(args, 4, s.canvas.Pen())
	if err != nil {
		return pxl.EmptyRect, 0, err
	}
	return pxl.R(v[0], v[1], v[2], v[3]), col, nil
}

// rect handles rect(left, top, right, bottom [, color]) and draws the outline.
func (s *Runtime) rect(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	r, col, err := s.rectArgs(getAllArgs(c))
	if err != nil {
		return nil, fmt.Errorf("rect: %w", err)
	}
	if err := s.canvas.RectOutlineColor(r, col); err != nil {
		return nil, fmt.Errorf("rect: %w", err)
	}
	return c.Next(), nil
}

// fill handles fill(left, top, right, bottom [, color])
func (s *Runtime) fill(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	r, col, err := s.rectArgs(getAllArgs(c))
	if err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	if err := s.canvas.RectFillColor(r, col); err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	return c.Next(), nil
}

// frame3d handles frame3d(left, top, right, bottom, light, dark, raised [, fill])
func (s *Runtime) frame3d(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	v, err := getInts(args, 4)
	if err != nil {
		return nil, fmt.Errorf("frame3d: %w", err)
	}
	light, err := getColorArg(args, 4, pxl.ButtonFace)
	if err != nil {
		return nil, fmt.Errorf("frame3d: light: %w", err)
	}
	dark, err := getColorArg(args, 5, pxl.ButtonShadow)
	if err != nil {
		return nil, fmt.Errorf("frame3d: dark: %w", err)
	}
	raised := getBoolArg(args, 6, true)
	r := pxl.R(v[0], v[1], v[2], v[3])

	if len(args) > 7 && !args[7].IsNil() {
		fillCol, err := getColorArg(args, 7, pxl.ButtonFace)
		if err != nil {
			return nil, fmt.Errorf("frame3d: fill: %w", err)
		}
		err = s.canvas.Frame3DFill(r, light, dark, fillCol, raised)
		if err != nil {
			return nil, fmt.Errorf("frame3d: %w", err)
		}
		return c.Next(), nil
	}
	if err := s.canvas.Frame3D(r, light, dark, raised); err != nil {
		return nil, fmt.Errorf("frame3d: %w", err)
	}
	return c.Next(), nil
}

// poly handles poly({x1, y1, x2, y2, ...} [, color])
func (s *Runtime) poly(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	if len(args) == 0 {
		return nil, fmt.Errorf("poly: argument 1 out of range (have 0)")
	}
	tbl, ok := args[0].TryTable()
	if !ok {
		return nil, fmt.Errorf("poly: argument 1 is not a table")
	}
	var coords []int
	for i := int64(1); ; i++ {
		v := tbl.Get(rt.IntValue(i))
		if v.IsNil() {
			break
		}
		n, err := getIntArg([]rt.Value{v}, 0)
		if err != nil {
			return nil, fmt.Errorf("poly: element %d is not a number", i)
		}
		coords = append(coords, n)
	}
	if len(coords)%2 != 0 {
		return nil, fmt.Errorf("poly: odd number of coordinates (%d)", len(coords))
	}
	pts := make([]pxl.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		pts = append(pts, pxl.Pt(coords[i], coords[i+1]))
	}

	col, err := getColorArg(args, 1, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("poly: %w", err)
	}
	if err := s.canvas.PolyOutlineColor(pts, col); err != nil {
		return nil, fmt.Errorf("poly: %w", err)
	}
	return c.Next(), nil
}

// circle handles circle(cx, cy, radius [, color])
func (s *Runtime) circle(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	v, err := getInts(args, 3)
	if err != nil {
		return nil, fmt.Errorf("circle: %w", err)
	}
	col, err := getColorArg(args, 3, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("circle: %w", err)
	}
	if err := s.canvas.CircleOutlineColor(pxl.Pt(v[0], v[1]), v[2], col); err != nil {
		return nil, fmt.Errorf("circle: %w", err)
	}
	return c.Next(), nil
}

// ellipse handles ellipse(cx, cy, rx, ry [, color])
func (s *Runtime) ellipse(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	v, err := getInts(args, 4)
	if err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	col, err := getColorArg(args, 4, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	if err := s.canvas.EllipseOutline(v[0], v[1], v[2], v[3], col); err != nil {
		return nil, fmt.Errorf("ellipse: %w", err)
	}
	return c.Next(), nil
}

// text handles text(x, y, s [, color]) and returns the advance width.
func (s *Runtime) text(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	args := getAllArgs(c)
	v, err := getInts(args, 2)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	str, err := getStringArg(args, 2)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	col, err := getColorArg(args, 3, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	if err := s.canvas.TextOutColor(v[0], v[1], str, col); err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return c.PushingNext1(t.Runtime, rt.IntValue(int64(s.canvas.TextWidth(str)))), nil
}

// --- Colors ---

// rgb handles rgb(r, g, b) with channels in 0..255.
func (s *Runtime) rgb(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	v, err := getInts(getAllArgs(c), 3)
	if err != nil {
		return nil, fmt.Errorf("rgb: %w", err)
	}
	for i, ch := range v {
		if ch < 0 || ch > 255 {
			return nil, fmt.Errorf("rgb: channel %d out of range: %d", i+1, ch)
		}
	}
	return c.PushingNext1(t.Runtime, colorValue(pxl.RGBColor(uint8(v[0]), uint8(v[1]), uint8(v[2])))), nil
}

// color handles color("#rrggbb")
func (s *Runtime) color(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	str, err := getStringArg(getAllArgs(c), 0)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	col, err := pxl.ParseColor(str)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}
	return c.PushingNext1(t.Runtime, colorValue(col)), nil
}

func (s *Runtime) lighten(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return s.shade(t, c, "lighten", pxl.Color.Lighten)
}

func (s *Runtime) darken(t *rt.Thread, c *rt.GoCont) (rt.Cont, error) {
	return s.shade(t, c, "darken", pxl.Color.Darken)
}

func (s *Runtime) shade(t *rt.Thread, c *rt.GoCont, name string, fn func(pxl.Color, float64) pxl.Color) (rt.Cont, error) {
	args := getAllArgs(c)
	col, err := getColorArg(args, 0, s.canvas.Pen())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	p, err := getFloatArg(args, 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return c.PushingNext1(t.Runtime, colorValue(fn(col, p))), nil
}
