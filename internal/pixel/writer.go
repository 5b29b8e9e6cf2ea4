package pixel

import (
	"errors"
	"fmt"
)

// ErrNoWriter is returned by WriterFor when a format has no writer.
var ErrNoWriter = errors.New("pixel: no writer for format")

// Writer reads and writes single pixels and runs of pixels in one format.
//
// Every method addresses memory through dst/src slices that start at the
// target pixel; callers are responsible for bounds. Writers never touch
// bytes outside the pixels they are asked to write.
type Writer interface {
	// Size returns the number of bytes per pixel.
	Size() int

	// Write stores c at dst.
	Write(dst []byte, c RGB)

	// WritePacked stores the packed color v at dst.
	WritePacked(dst []byte, v uint32)

	// Read loads the pixel at src.
	Read(src []byte) RGB

	// WriteRun stores c into count consecutive pixels starting at dst.
	WriteRun(dst []byte, count int, c RGB)
}

// WriterFor returns the writer for f.
func WriterFor(f Format) (Writer, error) {
	switch f {
	case Format32:
		return writer32{}, nil
	case Format24:
		return writer24{}, nil
	case Format16:
		return writer16{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoWriter, f)
	}
}

// writer32 stores [pad, R, G, B].
type writer32 struct{}

func (writer32) Size() int { return 4 }

func (writer32) Write(dst []byte, c RGB) {
	_ = dst[3]
	dst[1] = c.R
	dst[2] = c.G
	dst[3] = c.B
}

func (w writer32) WritePacked(dst []byte, v uint32) {
	w.Write(dst, Unpack(v))
}

func (writer32) Read(src []byte) RGB {
	_ = src[3]
	return RGB{R: src[1], G: src[2], B: src[3]}
}

// WriteRun is unrolled by eight pixels; the remainder is written one by one.
func (writer32) WriteRun(dst []byte, count int, c RGB) {
	if count <= 0 {
		return
	}
	_ = dst[count*4-1]

	i := 0
	for blocks := count / 8; blocks > 0; blocks-- {
		dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B
		dst[i+5], dst[i+6], dst[i+7] = c.R, c.G, c.B
		dst[i+9], dst[i+10], dst[i+11] = c.R, c.G, c.B
		dst[i+13], dst[i+14], dst[i+15] = c.R, c.G, c.B
		dst[i+17], dst[i+18], dst[i+19] = c.R, c.G, c.B
		dst[i+21], dst[i+22], dst[i+23] = c.R, c.G, c.B
		dst[i+25], dst[i+26], dst[i+27] = c.R, c.G, c.B
		dst[i+29], dst[i+30], dst[i+31] = c.R, c.G, c.B
		i += 32
	}
	for rest := count % 8; rest > 0; rest-- {
		dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B
		i += 4
	}
}

// writer24 stores [R, G, B].
type writer24 struct{}

func (writer24) Size() int { return 3 }

func (writer24) Write(dst []byte, c RGB) {
	_ = dst[2]
	dst[0] = c.R
	dst[1] = c.G
	dst[2] = c.B
}

func (w writer24) WritePacked(dst []byte, v uint32) {
	w.Write(dst, Unpack(v))
}

func (writer24) Read(src []byte) RGB {
	_ = src[2]
	return RGB{R: src[0], G: src[1], B: src[2]}
}

func (writer24) WriteRun(dst []byte, count int, c RGB) {
	if count <= 0 {
		return
	}
	_ = dst[count*3-1]
	for i := 0; i < count*3; i += 3 {
		dst[i], dst[i+1], dst[i+2] = c.R, c.G, c.B
	}
}

// writer16 stores RGB565, low byte first.
type writer16 struct{}

func (writer16) Size() int { return 2 }

func rgb565(c RGB) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

func (writer16) Write(dst []byte, c RGB) {
	v := rgb565(c)
	_ = dst[1]
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
}

func (w writer16) WritePacked(dst []byte, v uint32) {
	w.Write(dst, Unpack(v))
}

// Read expands each channel back to 8 bits by replicating its high bits.
func (writer16) Read(src []byte) RGB {
	_ = src[1]
	v := uint16(src[0]) | uint16(src[1])<<8
	r := uint8(v >> 11)
	g := uint8(v>>5) & 0x3f
	b := uint8(v) & 0x1f
	return RGB{
		R: r<<3 | r>>2,
		G: g<<2 | g>>4,
		B: b<<3 | b>>2,
	}
}

func (writer16) WriteRun(dst []byte, count int, c RGB) {
	if count <= 0 {
		return
	}
	v := rgb565(c)
	lo, hi := byte(v), byte(v>>8)
	_ = dst[count*2-1]
	for i := 0; i < count*2; i += 2 {
		dst[i], dst[i+1] = lo, hi
	}
}
