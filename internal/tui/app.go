// Package tui implements the interactive contrast report browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schemelint/schemelint/internal/audit"
	"github.com/schemelint/schemelint/internal/tui/styles"
	"github.com/schemelint/schemelint/internal/wcag"
)

const (
	minWidth  = 60
	minHeight = 15
)

// Run launches the report browser over a completed audit.
func Run(report *audit.Report) error {
	program := tea.NewProgram(newModel(report), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	report   *audit.Report
	styles   styles.Styles
	selected int
	width    int
	height   int
}

func newModel(report *audit.Report) model {
	return model{
		report: report,
		styles: styles.Default(),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.report.Schemes)-1 {
				m.selected++
			}
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return joinLines(m.smallViewLines()) + "\n"
		}
	}

	lines := []string{
		m.styles.Title.Render("WCAG Contrast Report"),
		"",
	}
	lines = append(lines, m.schemeListLines()...)
	lines = append(lines, "", m.styles.Border.Render(strings.Repeat("─", minWidth)))
	lines = append(lines, m.checkPanelLines()...)
	lines = append(lines, "", m.styles.Muted.Render("↑/↓ select scheme | q quit"))

	return joinLines(lines) + "\n"
}

func (m model) smallViewLines() []string {
	return []string{
		m.styles.Warn.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
		m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func (m model) schemeListLines() []string {
	lines := make([]string, 0, len(m.report.Schemes))
	for i, result := range m.report.Schemes {
		marker := "  "
		style := m.styles.Text
		selected := i == m.selected
		if selected {
			marker = "> "
			style = m.styles.Selected
		}
		worst := worstLevel(result)
		badge := m.badgeStyle(worst, selected).Render(worst.Code())
		summary := m.styles.Muted.Render(fmt.Sprintf("(%d checks)", len(result.Checks)))
		lines = append(lines, marker+style.Render(result.Scheme)+" "+badge+" "+summary)
	}
	return lines
}

// worstLevel returns the lowest tier among the scheme's checks.
func worstLevel(result audit.SchemeResult) wcag.Level {
	worst := wcag.LevelAAA
	for _, check := range result.Checks {
		if check.Level < worst {
			worst = check.Level
		}
	}
	return worst
}

// badgeStyle picks the tier color for a scheme row's badge, Lab-muted
// toward the background when the row is not selected.
func (m model) badgeStyle(level wcag.Level, selected bool) lipgloss.Style {
	if selected {
		return m.levelStyle(level)
	}
	switch {
	case level.MeetsAANormal():
		return m.styles.PassDim
	case level == wcag.LevelAALarge:
		return m.styles.WarnDim
	default:
		return m.styles.FailDim
	}
}

func (m model) checkPanelLines() []string {
	if len(m.report.Schemes) == 0 {
		return []string{m.styles.Muted.Render("No schemes audited.")}
	}

	result := m.report.Schemes[m.selected]
	lines := []string{m.styles.Title.Render(result.Scheme)}

	for _, check := range result.Checks {
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(check.Foreground)).
			Background(lipgloss.Color(check.Background)).
			Render(" Aa ")

		lines = append(lines, fmt.Sprintf("  %s %s  %.2f:1  %s",
			swatch,
			m.styles.Text.Render(check.Label),
			check.Ratio,
			m.levelStyle(check.Level).Render(check.Level.String()),
		))
	}

	return lines
}

func (m model) levelStyle(level wcag.Level) lipgloss.Style {
	switch {
	case level.MeetsAANormal():
		return m.styles.Pass
	case level == wcag.LevelAALarge:
		return m.styles.Warn
	default:
		return m.styles.Fail
	}
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
