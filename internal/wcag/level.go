package wcag

// Minimum contrast ratios for the WCAG conformance tiers.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdAAALarge  = 4.5
)

// Level is the conformance tier a contrast ratio reaches. Higher levels
// satisfy every requirement of the levels below them.
type Level int

const (
	// LevelFail meets no WCAG contrast requirement.
	LevelFail Level = iota
	// LevelAALarge meets AA for large text only.
	LevelAALarge
	// LevelAANormal meets AA for normal text and AAA for large text.
	// The two tiers share the 4.5:1 threshold.
	LevelAANormal
	// LevelAAA meets AAA for both normal and large text.
	LevelAAA
)

// Classify maps a contrast ratio onto its conformance tier, checking the
// most stringent threshold first.
func Classify(ratio float64) Level {
	switch {
	case ratio >= ThresholdAAANormal:
		return LevelAAA
	case ratio >= ThresholdAANormal:
		return LevelAANormal
	case ratio >= ThresholdAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// MeetsAANormal reports whether the tier satisfies AA for normal text.
func (l Level) MeetsAANormal() bool {
	return l >= LevelAANormal
}

// String returns the human-readable tier label used in reports.
func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA (normal and large text)"
	case LevelAANormal:
		return "AAA (large text only), AA (normal text)"
	case LevelAALarge:
		return "AA (large text only) - fails for normal text"
	default:
		return "FAILS WCAG requirements"
	}
}

// Code returns the stable machine-readable tier name.
func (l Level) Code() string {
	switch l {
	case LevelAAA:
		return "aaa"
	case LevelAANormal:
		return "aa-normal"
	case LevelAALarge:
		return "aa-large"
	default:
		return "fail"
	}
}

// MarshalText encodes the level as its Code for JSON output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.Code()), nil
}
