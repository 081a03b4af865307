package i18n

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

// Negotiate picks the supported language that best fits an Accept-Language
// header. An empty or unparsable header yields Default.
func Negotiate(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Collator returns a string collator for lang.
func Collator(lang Lang) *collate.Collator {
	return collate.New(lang.Tag(), collate.IgnoreCase)
}
