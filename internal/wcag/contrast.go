package wcag

// ContrastRatio returns the WCAG contrast ratio between two colors, in
// [1, 21]. The result is symmetric in its arguments.
func ContrastRatio(a, b Color) float64 {
	l1 := a.Luminance()
	l2 := b.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
