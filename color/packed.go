// Package color implements 32-bit ARGB packed colors used by widget styles and charts
//
// Layout is 0xAARRGGBB. Alpha 0 means "unset": sinks fall back to their default
// color, so the zero value of Packed is a usable "no color" marker.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Packed is a 0xAARRGGBB color
type Packed uint32

// None is the unset color
const None Packed = 0

// Pack assembles a color from its channels
func Pack(a, r, g, b uint8) Packed {
	return Packed(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB assembles an opaque color
func RGB(r, g, b uint8) Packed {
	return Pack(0xFF, r, g, b)
}

// Unpack splits the color into channels
func (c Packed) Unpack() (a, r, g, b uint8) {
	return c.A(), c.R(), c.G(), c.B()
}

func (c Packed) A() uint8 { return uint8(c >> 24) }
func (c Packed) R() uint8 { return uint8(c >> 16) }
func (c Packed) G() uint8 { return uint8(c >> 8) }
func (c Packed) B() uint8 { return uint8(c) }

// IsSet reports whether the color carries any alpha
func (c Packed) IsSet() bool {
	return c.A() != 0
}

// Hex formats as #RRGGBB for opaque colors, #AARRGGBB otherwise
func (c Packed) Hex() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A(), c.R(), c.G(), c.B())
}

// Colorful converts to a go-colorful color, alpha is dropped
func (c Packed) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// TCell converts to a tcell color, unset colors map to the terminal default
func (c Packed) TCell() tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

// FromColorful packs a go-colorful color with the given alpha
func FromColorful(cf colorful.Color, alpha uint8) Packed {
	r, g, b := cf.Clamped().RGB255()
	return Pack(alpha, r, g, b)
}

// ParseHex accepts #RGB, #RRGGBB and #AARRGGBB
func ParseHex(s string) (Packed, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return None, fmt.Errorf("color %q: missing '#' prefix", s)
	}

	alpha := uint8(0xFF)
	rgb := s
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return None, fmt.Errorf("color %q: bad alpha: %w", s, err)
		}
		alpha = uint8(a)
		rgb = "#" + s[3:]
	}

	cf, err := colorful.Hex(rgb)
	if err != nil {
		return None, fmt.Errorf("color %q: %w", s, err)
	}
	return FromColorful(cf, alpha), nil
}

// Interpolate blends c1 toward c2 channel by channel
// t is not clamped, values outside [0,1] extrapolate and each channel is clamped to a byte
func Interpolate(c1, c2 Packed, t float64) Packed {
	a1, r1, g1, b1 := c1.Unpack()
	a2, r2, g2, b2 := c2.Unpack()
	return Pack(
		lerpChannel(a1, a2, t),
		lerpChannel(r1, r2, t),
		lerpChannel(g1, g2, t),
		lerpChannel(b1, b2, t),
	)
}

func lerpChannel(from, to uint8, t float64) uint8 {
	v := math.Floor(float64(from) + (float64(to)-float64(from))*t + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// InterpolateHCL blends in HCL space for perceptually even gradients, alpha blends linearly
func InterpolateHCL(c1, c2 Packed, t float64) Packed {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}
	blended := c1.Colorful().BlendHcl(c2.Colorful(), t)
	return FromColorful(blended, lerpChannel(c1.A(), c2.A(), t))
}

// Gradient samples n evenly spaced colors from the first to the last stop
func Gradient(stops []Packed, n int) []Packed {
	if n <= 0 || len(stops) == 0 {
		return nil
	}
	out := make([]Packed, n)
	if len(stops) == 1 || n == 1 {
		for i := range out {
			out[i] = stops[0]
		}
		return out
	}

	segments := float64(len(stops) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		out[i] = Interpolate(stops[seg], stops[seg+1], pos-float64(seg))
	}
	return out
}
