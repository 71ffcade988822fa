package ogimage

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses an opaque "#rgb" or "#rrggbb" color.
func ParseHex(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if (len(s) != 4 && len(s) != 7) || s[0] != '#' || !isHexDigits(s[1:]) {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// isHexDigits rejects the signs and spaces fmt.Sscanf would let through.
func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
