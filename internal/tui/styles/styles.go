// Package styles defines the color tokens and lipgloss styles for the
// report browser.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Tokens are the semantic colors used by the browser chrome. These style
// the UI itself, not the schemes under audit.
type Tokens struct {
	Background string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Pass       string
	Warn       string
	Fail       string
}

// DefaultTokens is the baseline palette.
var DefaultTokens = Tokens{
	Background: "#0B0F14",
	Text:       "#E6EDF3",
	TextMuted:  "#8B9AAE",
	Border:     "#223043",
	Accent:     "#7AA2F7",
	Pass:       "#3FB950",
	Warn:       "#D29922",
	Fail:       "#F85149",
}

// Styles contains lipgloss styles derived from tokens.
type Styles struct {
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Border   lipgloss.Style
	Pass     lipgloss.Style
	Warn     lipgloss.Style
	Fail     lipgloss.Style
	PassDim  lipgloss.Style
	WarnDim  lipgloss.Style
	FailDim  lipgloss.Style
}

// Default builds styles from the default tokens.
func Default() Styles {
	return Build(DefaultTokens)
}

// Build converts tokens into lipgloss styles.
func Build(tokens Tokens) Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Pass:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Pass)),
		Warn:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warn)),
		Fail:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Fail)),
		PassDim:  lipgloss.NewStyle().Foreground(lipgloss.Color(Mute(tokens.Pass, tokens.Background))),
		WarnDim:  lipgloss.NewStyle().Foreground(lipgloss.Color(Mute(tokens.Warn, tokens.Background))),
		FailDim:  lipgloss.NewStyle().Foreground(lipgloss.Color(Mute(tokens.Fail, tokens.Background))),
	}
}

// Mute blends a status color toward the background in Lab space so
// unselected rows recede without losing their hue.
func Mute(hex, background string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	bg, err := colorful.Hex(background)
	if err != nil {
		return hex
	}
	return c.BlendLab(bg, 0.45).Clamped().Hex()
}
