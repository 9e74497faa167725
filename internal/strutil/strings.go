package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// RemoveExtraSpaces removes unnecessary spaces in the string
// For example RemoveExtraSpaces("hello  world  ") return "hello world"
func RemoveExtraSpaces(s string) string {
	idx := 0

	return strings.Trim(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			idx++
			if idx > 1 {
				return -1
			}
		} else if idx > 0 {
			idx = 0
		}

		return r
	}, s), " \t")
}

// CamelCase returns a string that is a camel case
func CamelCase(s string) string {
	tokens := strings.Split(strings.ToLower(s), " ")
	for i := range tokens {
		tokens[i] = titleCaser.String(tokens[i])
	}

	return strings.Join(tokens, "")
}

// NormalizeCode returns an ISO code without surrounding spaces in upper case, e.g. " usd" becomes "USD"
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeCodes applies NormalizeCode to every element and drops the empty ones.
// The result is never nil
func NormalizeCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c = NormalizeCode(c); c != "" {
			out = append(out, c)
		}
	}

	return out
}
