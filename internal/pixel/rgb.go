package pixel

// RGB is a color split into its three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Pack encodes c as R | G<<8 | B<<16.
func Pack(c RGB) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// Unpack is the exact inverse of Pack. Bits above 23 are ignored.
func Unpack(v uint32) RGB {
	return RGB{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
	}
}
