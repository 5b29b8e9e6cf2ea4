package pxl

import (
	"image/color"
	"math"

	"golang.org/x/text/unicode/norm"
	"tinygo.org/x/tinyfont"
)

// TextOut writes s with the pen color. See TextOutColor.
func (c *Canvas) TextOut(x, y int, s string) error {
	return c.TextOutColor(x, y, s, c.pen)
}

// TextOutColor writes s starting at x with its baseline on y, using the
// canvas font. Glyphs are 1-bit and every lit pixel is clipped like
// SetPixelColor. The string is NFC-normalized first so that combined
// characters find their precomposed glyphs.
//
// A line whose box misses the clip rectangle, or whose origin lies outside
// the int16 coordinate range of the font renderer, draws nothing.
func (c *Canvas) TextOutColor(x, y int, s string, col Color) error {
	if c.Empty() {
		return ErrInvalidState
	}
	if s == "" {
		return nil
	}
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return nil
	}
	s = norm.NFC.String(s)
	if !c.textBox(x, y, s).Overlaps(c.clipRect) {
		return nil
	}
	rgb := col.RGB()
	tinyfont.WriteLine(c.Displayer(), c.font, int16(x), int16(y), s,
		color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 0xff})
	return nil
}

// textBox bounds every pixel a line of s at (x, y) can light. Glyphs may
// reach one line height above and below the baseline.
func (c *Canvas) textBox(x, y int, s string) Rect {
	_, outbox := tinyfont.LineWidth(c.font, s)
	adv := int(c.font.GetYAdvance())
	return Rect{Left: x - adv, Top: y - adv, Right: x + int(outbox) + adv, Bottom: y + adv}
}

// TextWidth returns the advance width of s in pixels with the canvas font.
// It does not need an allocated canvas.
func (c *Canvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, norm.NFC.String(s))
	return int(outbox)
}
