package pxl

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pxlforge/pxl/internal/pixel"
)

// RGB is a color split into its red, green and blue channels.
type RGB = pixel.RGB

// Color is a packed RGB color laid out as R | G<<8 | B<<16.
// There is no alpha channel; two colors are equal when their bits are equal.
type Color uint32

// Common colors.
const (
	Black  Color = 0x000000
	White  Color = 0xFFFFFF
	Red    Color = 0x0000FF
	Green  Color = 0x00FF00
	Blue   Color = 0xFF0000
	Yellow Color = 0x00FFFF

	// ButtonFace and ButtonShadow are the face and shadow grays used for 3D frames.
	ButtonFace   Color = 0xE6E6E6
	ButtonShadow Color = 0xA3A3A3
)

// RGBColor packs r, g and b into a Color.
func RGBColor(r, g, b uint8) Color {
	return Color(pixel.Pack(RGB{R: r, G: g, B: b}))
}

// RGB unpacks c into its channels.
func (c Color) RGB() RGB {
	return pixel.Unpack(uint32(c))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c >> 16) }

// String returns the packed value as eight uppercase hex digits, e.g. "000000FF" for red.
func (c Color) String() string {
	return fmt.Sprintf("%08X", uint32(c))
}

// RGBA implements color.Color. The result is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// FromColor converts any color.Color to a Color, dropping alpha.
func FromColor(c color.Color) Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	r, g, b, _ := c.RGBA()
	return RGBColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string. The leading '#' is optional.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	col, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Black, fmt.Errorf("pxl: parse color %q: %w", s, err)
	}
	r, g, b := col.Clamped().RGB255()
	return RGBColor(r, g, b), nil
}

// Lighten raises the HCL luminance of c by p (0..1) and clamps the result.
func (c Color) Lighten(p float64) Color {
	return c.shiftLuminance(p)
}

// Darken lowers the HCL luminance of c by p (0..1) and clamps the result.
func (c Color) Darken(p float64) Color {
	return c.shiftLuminance(-p)
}

func (c Color) shiftLuminance(p float64) Color {
	col, _ := colorful.MakeColor(c)
	h, ch, l := col.Hcl()
	r, g, b := colorful.Hcl(h, ch, l+p).Clamped().RGB255()
	return RGBColor(r, g, b)
}
