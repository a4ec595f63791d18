package palette

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color value.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the canonical lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" string, case-insensitively.
func ParseHex(value string) (RGB, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) != 7 || trimmed[0] != '#' {
		return RGB{}, fmt.Errorf("invalid hex color %q", value)
	}

	parsed, err := strconv.ParseUint(trimmed[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", value)
	}

	return RGB{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
	}, nil
}

// RelativeLuminance returns the WCAG relative luminance of the color.
func RelativeLuminance(c RGB) float64 {
	r := channelToLinear(c.R)
	g := channelToLinear(c.G)
	b := channelToLinear(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// always >= 1.
func ContrastRatio(left RGB, right RGB) float64 {
	lighter := RelativeLuminance(left)
	darker := RelativeLuminance(right)
	if lighter < darker {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

func channelToLinear(channel uint8) float64 {
	scaled := float64(channel) / 255
	if scaled <= 0.03928 {
		return scaled / 12.92
	}
	return math.Pow((scaled+0.055)/1.055, 2.4)
}

func scaleChannel(channel uint8, factor float64) uint8 {
	scaled := math.Round(float64(channel) * factor)
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}
