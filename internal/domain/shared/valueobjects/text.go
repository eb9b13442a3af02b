package valueobjects

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RequiredText trims value, collapses inner whitespace and enforces 1..maxLen runes.
func RequiredText(field, value string, maxLen int) (string, error) {
	cleaned := strings.Join(strings.Fields(value), " ")
	if cleaned == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(cleaned) > maxLen {
		return "", fmt.Errorf("%s cannot exceed %d characters", field, maxLen)
	}
	return cleaned, nil
}

// TitleToken turns user input such as "software" or "SOFTWARE" into "Software".
// A Caser is stateful, so each call gets its own.
func TitleToken(value string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(value)))
}
