// Package audit runs the WCAG contrast checks over the built-in schemes
// and assembles the results into a report.
package audit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/schemelint/schemelint/internal/scheme"
	"github.com/schemelint/schemelint/internal/wcag"
)

// Check is the result of one background/foreground contrast check.
type Check struct {
	Label      string     `json:"label"`
	Background string     `json:"background"`
	Foreground string     `json:"foreground"`
	Ratio      float64    `json:"ratio"`
	Level      wcag.Level `json:"level"`
	AANormal   bool       `json:"aa_normal"`
}

// SchemeResult groups the checks for one scheme.
type SchemeResult struct {
	Scheme string  `json:"scheme"`
	Checks []Check `json:"checks"`
}

// Report is the outcome of a full audit run.
type Report struct {
	ID          string         `json:"id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Schemes     []SchemeResult `json:"schemes"`
}

// Run audits every built-in scheme.
func Run() (*Report, error) {
	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Schemes:     make([]SchemeResult, 0, len(scheme.All())),
	}

	for _, s := range scheme.All() {
		result, err := RunScheme(s)
		if err != nil {
			return nil, err
		}
		report.Schemes = append(report.Schemes, *result)
	}

	return report, nil
}

// RunScheme audits a single scheme.
func RunScheme(s scheme.Scheme) (*SchemeResult, error) {
	result := &SchemeResult{Scheme: s.Name}

	for _, pair := range s.Pairs() {
		bg, err := wcag.ParseHex(pair.Background)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: %w", s.Name, err)
		}
		fg, err := wcag.ParseHex(pair.Foreground)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: %w", s.Name, err)
		}

		ratio := wcag.ContrastRatio(bg, fg)
		level := wcag.Classify(ratio)
		result.Checks = append(result.Checks, Check{
			Label:      pair.Label,
			Background: pair.Background,
			Foreground: pair.Foreground,
			Ratio:      ratio,
			Level:      level,
			AANormal:   level.MeetsAANormal(),
		})
	}

	return result, nil
}
