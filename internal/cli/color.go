// Package cli provides ANSI color helpers for terminal output.
package cli

import (
	"os"

	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/schemelint/schemelint/internal/wcag"
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
)

func colorEnabled() bool {
	if viper.GetBool("no_color") {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(text, color string) string {
	if !colorEnabled() {
		return text
	}
	return color + text + colorReset
}

// formatLevel renders a tier as its status glyph plus the human label.
func formatLevel(level wcag.Level) string {
	glyph, color := levelGlyph(level)
	return colorize(glyph, color) + " " + level.String()
}

func levelGlyph(level wcag.Level) (string, string) {
	switch {
	case level.MeetsAANormal():
		return "✓", colorGreen
	case level == wcag.LevelAALarge:
		return "⚠", colorYellow
	default:
		return "✗", colorRed
	}
}
