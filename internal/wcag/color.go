// Package wcag implements the WCAG 2.x contrast model: hex color decoding,
// sRGB relative luminance, contrast ratios, and conformance classification.
package wcag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat reports a hex string that is not exactly six hex digits.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Color is an 8-bit-per-channel sRGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex decodes a six-digit hex color with an optional leading '#'.
// Shorthand three-digit forms are rejected.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	value, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	return Color{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// MustParseHex is ParseHex for trusted constants; it panics on bad input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
