// Package colour provides a colour object with saturating channel arithmetic.
package colour

// RGB represents a colour with red, green, and blue channels in [0, 255].
type RGB struct {
	R, G, B uint8
}

// White is the fixed background colour returned for rays that escape the scene.
var White = RGB{R: 0xFF, G: 0xFF, B: 0xFF}

// New returns a new RGB object with the specified channels.
func New(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// saturate clamps a channel value to [0, 255].
func saturate(c float64) uint8 {
	if c < 0.0 {
		return 0
	}
	if c > 255.0 {
		return 255
	}
	return uint8(c)
}

// Add returns the channel-wise sum of a and b, saturating each channel.
func (a RGB) Add(b RGB) RGB {
	return RGB{
		R: saturate(float64(a.R) + float64(b.R)),
		G: saturate(float64(a.G) + float64(b.G)),
		B: saturate(float64(a.B) + float64(b.B)),
	}
}

// Scale returns the colour a with every channel scaled by the intensity s
// and saturated to [0, 255].
func (a RGB) Scale(s float64) RGB {
	return RGB{
		R: saturate(s * float64(a.R)),
		G: saturate(s * float64(a.G)),
		B: saturate(s * float64(a.B)),
	}
}

// RGBA implements the Color (image/color) interface: alpha-premultiplied
// 16-bit channels, fully opaque.
func (rgb RGB) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(rgb.R) * 0x101, uint32(rgb.G) * 0x101, uint32(rgb.B) * 0x101, 0xFFFF
}
