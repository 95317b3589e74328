// Package cli provides the contrast report command.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/schemelint/schemelint/internal/audit"
)

const ruleWidth = 50

func runCheck(out io.Writer) error {
	report, err := audit.Run()
	if err != nil {
		return err
	}

	logger.Debug().
		Str("report_id", report.ID).
		Int("schemes", len(report.Schemes)).
		Msg("contrast audit complete")

	writeReport(out, report)
	return nil
}

func writeReport(out io.Writer, report *audit.Report) {
	fmt.Fprintln(out, "WCAG Contrast Ratio Analysis")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Requirements:")
	fmt.Fprintln(out, "  AA - Normal text: 4.5:1, Large text: 3:1")
	fmt.Fprintln(out, "  AAA - Normal text: 7:1, Large text: 4.5:1")
	fmt.Fprintln(out)

	for _, result := range report.Schemes {
		fmt.Fprintln(out)
		writeSchemeSection(out, result)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", ruleWidth))
	fmt.Fprintln(out, "RECOMMENDATION:")
	fmt.Fprintln(out, strings.Repeat("=", ruleWidth))
}

func writeSchemeSection(out io.Writer, result audit.SchemeResult) {
	fmt.Fprintf(out, "%s:\n", result.Scheme)
	fmt.Fprintln(out, strings.Repeat("-", ruleWidth))
	for _, check := range result.Checks {
		fmt.Fprintf(out, "  %s: %.2f:1\n", check.Label, check.Ratio)
		fmt.Fprintf(out, "    %s\n", formatLevel(check.Level))
	}
}
