package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// NormalizeQuery prepares user input for lookup and history:
//   - trims leading/trailing whitespace
//   - converts to lowercase (Unicode-aware)
//
// Inner whitespace, hyphens and apostrophes are preserved so that
// multi-word entries reach the API unchanged.
func NormalizeQuery(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	return lower.String(text)
}
