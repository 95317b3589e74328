package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schemelint/schemelint/internal/audit"
	"github.com/schemelint/schemelint/internal/tui/styles"
	"github.com/schemelint/schemelint/internal/wcag"
)

func testModel(t *testing.T) model {
	t.Helper()
	report, err := audit.Run()
	if err != nil {
		t.Fatalf("audit.Run: %v", err)
	}
	return newModel(report)
}

func TestUpdateNavigation(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	if m.selected != 1 {
		t.Errorf("selected = %d after down, want 1", m.selected)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	if m.selected != 0 {
		t.Errorf("selected = %d after up, want 0", m.selected)
	}

	// Selection is clamped at both ends.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	if m.selected != 0 {
		t.Errorf("selected = %d at top, want 0", m.selected)
	}

	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(model)
	}
	if m.selected != len(m.report.Schemes)-1 {
		t.Errorf("selected = %d at bottom, want %d", m.selected, len(m.report.Schemes)-1)
	}
}

func TestUpdateQuit(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q did not produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not quit")
	}
}

func TestViewListsSchemes(t *testing.T) {
	m := testModel(t)
	m.width = 120
	m.height = 40

	view := m.View()
	for _, want := range []string{
		"WCAG Contrast Report",
		"Grayscale Dark",
		"Default Light",
		"Background vs Foreground",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSchemeListBadges(t *testing.T) {
	m := testModel(t)

	lines := m.schemeListLines()
	if len(lines) != len(m.report.Schemes) {
		t.Fatalf("got %d list lines, want %d", len(lines), len(m.report.Schemes))
	}
	for i, result := range m.report.Schemes {
		if !strings.Contains(lines[i], worstLevel(result).Code()) {
			t.Errorf("line %d missing tier badge %q: %q", i, worstLevel(result).Code(), lines[i])
		}
	}
}

func TestWorstLevel(t *testing.T) {
	result := audit.SchemeResult{
		Checks: []audit.Check{
			{Level: wcag.LevelAAA},
			{Level: wcag.LevelAALarge},
			{Level: wcag.LevelAANormal},
		},
	}
	if got := worstLevel(result); got != wcag.LevelAALarge {
		t.Errorf("worstLevel = %v, want %v", got, wcag.LevelAALarge)
	}
}

func TestBadgeStyleDimsUnselected(t *testing.T) {
	m := testModel(t)

	tests := []struct {
		level wcag.Level
		token string
	}{
		{wcag.LevelAAA, styles.DefaultTokens.Pass},
		{wcag.LevelAALarge, styles.DefaultTokens.Warn},
		{wcag.LevelFail, styles.DefaultTokens.Fail},
	}

	for _, tt := range tests {
		bright := m.badgeStyle(tt.level, true).GetForeground()
		dim := m.badgeStyle(tt.level, false).GetForeground()
		if bright == dim {
			t.Errorf("badge for %v is not dimmed when unselected", tt.level)
		}
		want := lipgloss.Color(styles.Mute(tt.token, styles.DefaultTokens.Background))
		if dim != want {
			t.Errorf("dim badge for %v = %v, want Lab-muted %v", tt.level, dim, want)
		}
	}
}

func TestViewSmallTerminal(t *testing.T) {
	m := testModel(t)
	m.width = 20
	m.height = 5

	view := m.View()
	if !strings.Contains(view, "Terminal too small") {
		t.Error("small-terminal fallback not shown")
	}
}
