package showcase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// AnchorID derives the section anchor from its title: lower-cased, with every
// run of whitespace replaced by a single hyphen. Surrounding whitespace is kept
// as a hyphen, not trimmed, so existing links stay stable.
func AnchorID(title string) string {
	lowered := lower.String(title)

	var b strings.Builder
	b.Grow(len(lowered))
	inSpace := false
	for _, r := range lowered {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// isSpace matches the whitespace class browsers use for \s: it includes the
// byte order mark but not NEL (U+0085).
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
