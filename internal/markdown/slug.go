package markdown

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	lower        = cases.Lower(language.Und)
	disallowed   = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Slugify turns a heading title into an anchor id: lowercase ASCII letters,
// digits and hyphens, with diacritics stripped and whitespace runs collapsed
// to a single hyphen.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(t, lower.String(title))
	if err != nil {
		s = lower.String(title)
	}
	s = disallowed.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return whitespaceRe.ReplaceAllString(s, "-")
}
