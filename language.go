package birates

import (
	"fmt"

	"github.com/robotomize/birates/internal/strutil"
	"golang.org/x/text/language"
)

// Language selects the language of the texts returned by the service
type Language string

const (
	LanguageEn Language = "En"
	LanguageIt Language = "It"
)

// DefaultLanguage is sent when the caller leaves the language empty
const DefaultLanguage = LanguageEn

// String returns the symbolic name sent in the lang query parameter. Only LanguageEn and
// LanguageIt are known to the service, any other value is sent as the default
func (l Language) String() string {
	switch l {
	case LanguageEn, LanguageIt:
		return string(l)
	default:
		return string(DefaultLanguage)
	}
}

// Tag returns the BCP 47 tag matching the language, used for locale-aware formatting
func (l Language) Tag() language.Tag {
	if l.String() == string(LanguageIt) {
		return language.Italian
	}

	return language.English
}

// ParseLanguage accepts the symbolic names in any case, e.g. "it", "IT" or "It"
func ParseLanguage(s string) (Language, error) {
	switch l := Language(strutil.CamelCase(strutil.RemoveExtraSpaces(s))); l {
	case LanguageEn, LanguageIt:
		return l, nil
	case "":
		return DefaultLanguage, nil
	default:
		return "", fmt.Errorf("%w: unknown language %q", ErrInvalidArgument, s)
	}
}
