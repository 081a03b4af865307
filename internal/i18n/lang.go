// Package i18n holds the bilingual primitives of the site: the language
// codes, values authored once per language, and the per-visitor selector.
package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// Lang is a supported language code.
type Lang string

const (
	ES Lang = "es"
	EN Lang = "en"
)

// Default is used when nothing valid has been persisted.
const Default = ES

// Supported lists every language, in authoring order.
var Supported = []Lang{ES, EN}

var ErrUnsupportedLang = errors.New("unsupported language")

// Parse returns the Lang for code, case-insensitively.
func Parse(code string) (Lang, error) {
	l := Lang(strings.ToLower(strings.TrimSpace(code)))
	if !l.Valid() {
		return "", ErrUnsupportedLang
	}
	return l, nil
}

// Valid reports whether l is one of the supported codes.
func (l Lang) Valid() bool {
	for _, s := range Supported {
		if l == s {
			return true
		}
	}
	return false
}

// Tag returns the BCP 47 tag of l.
func (l Lang) Tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.Spanish
}

// Other returns the language a toggle switches to.
func (l Lang) Other() Lang {
	if l == ES {
		return EN
	}
	return ES
}

func (l Lang) String() string { return string(l) }
