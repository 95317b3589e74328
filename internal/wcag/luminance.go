package wcag

import "math"

// Luminance returns the relative luminance of the color per WCAG 2.x, in
// [0, 1]: each channel is normalized to [0, 1], linearized out of sRGB
// gamma, and the channels are combined with the ITU-R BT.709 coefficients.
func (c Color) Luminance() float64 {
	r := linearize(float64(c.R) / 255.0)
	g := linearize(float64(c.G) / 255.0)
	b := linearize(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// linearize converts an sRGB channel value to linear RGB.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
