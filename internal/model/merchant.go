package model

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleMerchant normalizes a merchant name for display: trimmed and
// title-cased. Merchants are stored in this form so case-insensitive
// filtering and display agree. A Caser is stateful, so one is built per
// call rather than shared.
func TitleMerchant(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}
