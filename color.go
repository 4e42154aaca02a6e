package colortool

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var _ color.Color = Color{}

// Color is a calibrated RGB color with channels in [0,1]. Alpha is always opaque.
type Color struct {
	R, G, B float64
}

// NewColor returns a Color with every channel clamped to [0,1].
func NewColor(r, g, b float64) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

// Gray is used when the color token is not recognized.
var Gray = fromRGBA(colornames.Gray)

func fromRGBA(c color.RGBA) Color {
	return NewColor(float64(c.R)/0xff, float64(c.G)/0xff, float64(c.B)/0xff)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.RGBA8().RGBA()
}

// RGBA8 returns the color quantized to 8 bits per channel.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 0xff}
}

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	rgba := c.RGBA8()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}

func (c Color) String() string {
	return fmt.Sprintf("%s (r:%.3f g:%.3f b:%.3f)", c.Hex(), c.R, c.G, c.B)
}

func byteBounds(rng [2]float64) (lo, hi float64) {
	return math.Ceil(rng[0]*0xff) / 0xff, math.Floor(rng[1]*0xff) / 0xff
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 0xff))
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Channel ranges for the random color options.
var (
	RandomRange = [2]float64{0.0, 1.0}
	DarkRange   = [2]float64{0.0, 0.3}
	LightRange  = [2]float64{0.7, 1.0}
)

// randomColor draws each channel from rng narrowed to whole 8-bit steps, so the
// quantized pixel values stay inside rng as well.
func randomColor(src Source, rng [2]float64) Color {
	lo, hi := byteBounds(rng)
	ch := func() float64 {
		return lo + src.Float64()*(hi-lo)
	}
	r := ch()
	g := ch()
	b := ch()
	return NewColor(r, g, b)
}

// ParseHex parses s as a base-16 integer and splits its low 24 bits into red
// (bits 16-23), green (bits 8-15) and blue (bits 0-7). Strings shorter than six
// digits are accepted. Every character of s must be a hex digit.
func ParseHex(s string) (Color, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return !isHexDigit(r) }) >= 0 {
		return Color{}, fmt.Errorf("%w: cannot parse #%s", ErrParse, s)
	}
	digits := s
	if len(digits) > 6 {
		digits = digits[len(digits)-6:]
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: cannot parse #%s", ErrParse, s)
	}
	r := uint8(v >> 16)
	g := uint8(v >> 8)
	b := uint8(v)
	return NewColor(float64(r)/0xff, float64(g)/0xff, float64(b)/0xff), nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

var channelNames = [3]string{"red", "green", "blue"}

// ParsePercent parses red, green and blue percentages in the range 0-100.
// The first invalid token is reported.
func ParsePercent(tokens [3]string) (Color, error) {
	var v [3]float64
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if errors.Is(err, strconv.ErrRange) {
			return Color{}, fmt.Errorf("%w: %s value %s is out of range: must be from 0 to 100", ErrRange, channelNames[i], tok)
		}
		if err != nil {
			return Color{}, fmt.Errorf("%w: cannot parse %s value %q: must be an integer from 0 to 100", ErrParse, channelNames[i], tok)
		}
		if n < 0 || n > 100 {
			return Color{}, fmt.Errorf("%w: %s value %d is out of range: must be from 0 to 100", ErrRange, channelNames[i], n)
		}
		v[i] = float64(n) / 100.0
	}
	return NewColor(v[0], v[1], v[2]), nil
}
