package styles

import (
	"strings"
	"testing"
)

func TestMute(t *testing.T) {
	muted := Mute("#3FB950", "#0B0F14")
	if !strings.HasPrefix(muted, "#") || len(muted) != 7 {
		t.Fatalf("Mute returned %q, want a hex color", muted)
	}
	if strings.EqualFold(muted, "#3FB950") {
		t.Error("Mute did not change the color")
	}
}

func TestMuteInvalidInputPassesThrough(t *testing.T) {
	if got := Mute("nope", "#0B0F14"); got != "nope" {
		t.Errorf("Mute(invalid) = %q, want input unchanged", got)
	}
	if got := Mute("#3FB950", "nope"); got != "#3FB950" {
		t.Errorf("Mute with invalid background = %q, want input unchanged", got)
	}
}

func TestBuildUsesTokens(t *testing.T) {
	s := Build(DefaultTokens)
	if s.Title.GetBold() != true {
		t.Error("Title style is not bold")
	}
	if s.Selected.GetBold() != true {
		t.Error("Selected style is not bold")
	}
}
