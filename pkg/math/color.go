package math

import "image/color"

// RGB is a linear color with unbounded float components.
// Lighting may push components above 1; clamping happens in RGBA8.
type RGB struct {
	R, G, B float32
}

// Add returns c + other.
func (c RGB) Add(other RGB) RGB {
	return RGB{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns c - other.
func (c RGB) Sub(other RGB) RGB {
	return RGB{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns c * s componentwise.
func (c RGB) Scale(s float32) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Lerp interpolates from c to other by t. t=0 yields c and t=1 yields other
// exactly.
func (c RGB) Lerp(other RGB, t float32) RGB {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// RGBA8 converts to an opaque 8-bit color, clamping each channel to [0,1].
func (c RGB) RGBA8() color.RGBA {
	return color.RGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: 0xff}
}

// Packed returns the color as 0xAARRGGBB with full alpha.
func (c RGB) Packed() uint32 {
	return 0xff<<24 | uint32(channel8(c.R))<<16 | uint32(channel8(c.G))<<8 | uint32(channel8(c.B))
}

func channel8(v float32) uint8 {
	switch {
	case v < 0 || v != v:
		return 0
	case v > 1:
		return 255
	}
	return uint8(v * 255)
}
