package pxl

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Displayer returns a drivers.Displayer that draws into c. Pixels go
// through the clip test like SetPixelColor, and alpha is ignored.
// Display is a no-op because the canvas memory is the display.
//
// It lets TinyGo driver code such as tinyfont render onto a canvas.
func (c *Canvas) Displayer() drivers.Displayer {
	return canvasDisplay{c: c}
}

type canvasDisplay struct {
	c *Canvas
}

// Size reports the canvas size, saturated at math.MaxInt16.
func (d canvasDisplay) Size() (x, y int16) {
	return int16(min(d.c.width, math.MaxInt16)), int16(min(d.c.height, math.MaxInt16))
}

func (d canvasDisplay) SetPixel(x, y int16, col color.RGBA) {
	if d.c.Empty() {
		return
	}
	d.c.plot(int(x), int(y), RGB{R: col.R, G: col.G, B: col.B})
}

func (d canvasDisplay) Display() error {
	return nil
}
