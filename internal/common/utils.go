package common

import (
	"strings"
	"unicode"
)

var separatorReplacer = strings.NewReplacer("-", " ", "_", " ")

// Normalize lowercases s, turns '-' and '_' into spaces and collapses runs of
// whitespace, so "Akwa-Ibom" and " akwa  ibom " compare equal.
func Normalize(s string) string {
	s = separatorReplacer.Replace(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

// HasWordPrefix reports whether text, read from the start of one of its
// words, begins with prefix. "port harcourt" has word prefix "harc" but
// "federal" does not have "ede".
func HasWordPrefix(text, prefix string) bool {
	if prefix == "" {
		return false
	}
	prev := ' '
	for i, r := range text {
		if isWordRune(r) && !isWordRune(prev) && strings.HasPrefix(text[i:], prefix) {
			return true
		}
		prev = r
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
