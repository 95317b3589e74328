// Package scheme defines the embedded color schemes audited for contrast.
// Schemes are defined once at startup and never mutated.
package scheme

import (
	"fmt"

	"github.com/schemelint/schemelint/internal/wcag"
)

// Role is a semantic slot in a scheme.
type Role string

const (
	RoleBackground Role = "background"
	RoleForeground Role = "foreground"
	RoleComment    Role = "comment"
	RoleRed        Role = "red"
	RoleGreen      Role = "green"
	RoleBlue       Role = "blue"
)

// Base16Key returns the base16 slot conventionally holding the role.
func (r Role) Base16Key() string {
	switch r {
	case RoleBackground:
		return "base00"
	case RoleForeground:
		return "base05"
	case RoleComment:
		return "base03"
	case RoleRed:
		return "base08"
	case RoleGreen:
		return "base0B"
	case RoleBlue:
		return "base0D"
	default:
		return string(r)
	}
}

// Scheme maps semantic roles to hex colors.
type Scheme struct {
	Name   string
	Colors map[Role]string
}

// Pair is a labeled background/foreground combination to check.
type Pair struct {
	Label      string
	Background string
	Foreground string
}

// accentChecks lists the optional accent roles in report order.
var accentChecks = []struct {
	role  Role
	label string
}{
	{RoleRed, "Background vs Red"},
	{RoleGreen, "Background vs Green"},
	{RoleBlue, "Background vs Blue"},
}

// Pairs returns the contrast checks for the scheme in report order: text
// and comment pairs first, then any accent roles the scheme defines.
func (s Scheme) Pairs() []Pair {
	bg := s.Colors[RoleBackground]
	pairs := []Pair{
		{Label: "Background vs Foreground", Background: bg, Foreground: s.Colors[RoleForeground]},
		{Label: "Background vs Comments", Background: bg, Foreground: s.Colors[RoleComment]},
	}

	for _, accent := range accentChecks {
		hex, ok := s.Colors[accent.role]
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{Label: accent.label, Background: bg, Foreground: hex})
	}

	return pairs
}

// HasAccents reports whether the scheme defines accent colors.
func (s Scheme) HasAccents() bool {
	_, ok := s.Colors[RoleRed]
	return ok
}

// Validate checks that every color in the scheme parses.
func (s Scheme) Validate() error {
	for role, hex := range s.Colors {
		if _, err := wcag.ParseHex(hex); err != nil {
			return fmt.Errorf("scheme %q role %s: %w", s.Name, role, err)
		}
	}
	return nil
}
