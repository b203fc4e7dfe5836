package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// dashReplacer unifies the long dash variants found in hand-written plans.
var dashReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
)

// NormalizeLabel lowercases the label, turns en and em dashes into hyphens,
// collapses whitespace runs to a single space and trims the ends.
//
// The result is the identity of a task across plan edits: two labels that
// normalize to the same key are the same task as far as reconciliation goes.
func NormalizeLabel(label string) string {
	// Casers keep internal state, so one is built per call.
	lowered := cases.Lower(language.Und).String(label)
	return strings.Join(strings.Fields(dashReplacer.Replace(lowered)), " ")
}
