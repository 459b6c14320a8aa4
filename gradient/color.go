package gradient

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color with int32 channels.
// Channels are conceptually 0..255 but interpolation does not clamp:
// out-of-range input channels pass through arithmetic unchanged. Clamping
// happens at the terminal boundary (see the render package).
type RGB struct {
	R, G, B int32
}

// RGBBlack is the zero value black color
var RGBBlack = RGB{0, 0, 0}

// Equal returns true if all channels match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// Hex formats the color as "#rrggbb". Channels outside 0..255 are pinned
// for display only.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// Hex parses a "#rrggbb" or "#rgb" string into a color stop.
func Hex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{int32(r), int32(g), int32(b)}, nil
}

// MustHex parses a hex color and panics on failure.
// Use only for known-good values in initialization code.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clampChannel(v int32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// lerpChannel interpolates one channel at step s of n. The whole channel
// value truncates toward zero, not the delta term: 255 -> 0 at quarter
// steps gives 191, not 192. n is always >= 1.
func lerpChannel(start, end int32, s, n int) int32 {
	return int32(float64(start) + float64(s)/float64(n)*float64(end-start))
}
