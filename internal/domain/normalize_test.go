package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Half Bath Clean", "half bath clean"},
		{"collapses whitespace", "Vacuum   phase\t2", "vacuum phase 2"},
		{"trims", "  Dishes  ", "dishes"},
		{"en dash", "Project: the other one – wrap-up", "project: the other one - wrap-up"},
		{"em dash", "Errand — get drywall anchors", "errand - get drywall anchors"},
		{"keeps arrows and emoji", "Walk Bo 🐾 → park", "walk bo 🐾 → park"},
		{"non-ascii letters", "ÉTÉ Planung", "été planung"},
		{"newlines", "Lunch\n\nbreak", "lunch break"},
		{"empty", "", ""},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeLabel(tt.input))
		})
	}
}

func TestNormalizeLabel_Idempotent(t *testing.T) {
	inputs := []string{
		"Laundry → switch/dry + fold one load",
		"  Errand — GET drywall   anchors ",
		"Hang carpet remnants for cats 🐈",
		"İstanbul trip",
		"ß and ẞ",
		"a b", // no-break space
		"",
	}
	for _, in := range inputs {
		once := NormalizeLabel(in)
		assert.Equal(t, once, NormalizeLabel(once), "input %q", in)
	}
}
