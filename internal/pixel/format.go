// Package pixel implements byte-level pixel storage for pxl canvases.
//
// Each supported pixel format has exactly one Writer. The set of formats is
// closed: WriterFor handles every known Format and rejects everything else.
package pixel

// Format identifies how a pixel is laid out in memory.
type Format uint8

const (
	// FormatNone is the "no format" sentinel of an unallocated canvas.
	FormatNone Format = iota

	// Format16 is 16-bit RGB565, little-endian (2 bytes per pixel).
	Format16

	// Format24 is 24-bit RGB stored as [R, G, B] (3 bytes per pixel).
	Format24

	// Format32 is 32-bit padded RGB stored as [pad, R, G, B] (4 bytes per pixel).
	// Byte 0 is never written.
	Format32

	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// BitsPerChannel is the number of significant bits of the widest channel.
	BitsPerChannel int

	// Lossless reports whether every 8-bit RGB triple survives a write/read round trip.
	Lossless bool
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatNone: {},
	Format16: {
		BytesPerPixel:  2,
		BitsPerChannel: 6,
		Lossless:       false,
	},
	Format24: {
		BytesPerPixel:  3,
		BitsPerChannel: 8,
		Lossless:       true,
	},
	Format32: {
		BytesPerPixel:  4,
		BitsPerChannel: 8,
		Lossless:       true,
	},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel, or 0 for FormatNone.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// IsValid reports whether f is a known format other than FormatNone.
func (f Format) IsValid() bool {
	return f > FormatNone && f < formatCount
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "None"
	case Format16:
		return "RGB565"
	case Format24:
		return "RGB24"
	case Format32:
		return "XRGB32"
	default:
		return "Unknown"
	}
}

// Stride returns the byte length of one row of width pixels,
// rounded up to the next multiple of align.
func Stride(width, pixelSize, align int) int {
	n := width * pixelSize
	if r := n % align; r > 0 {
		return n + align - r
	}
	return n
}
