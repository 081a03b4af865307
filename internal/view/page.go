// Package view builds the pages of the site with gomponents.
package view

import (
	"github.com/Leonard-ssj/portfolio/internal/config"
	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
)

// Page is the request-wide data every page renders with.
type Page struct {
	Site     *content.Site
	Lang     i18n.Localizer
	Path     string
	Title    string
	Features config.Features
	Flash    FlashData
}

// T picks the active-language branch of x.
func (p Page) T(x i18n.Text) string {
	return i18n.Pick(p.Lang, x)
}

// L returns the UI label id in the active language.
func (p Page) L(id string) string {
	return p.Site.Label(p.Lang, id)
}

func (p Page) lang() i18n.Lang {
	if p.Lang == nil {
		return i18n.Default
	}
	return p.Lang.Lang()
}

func pick[T any](p Page, v i18n.Localized[T]) T {
	return i18n.Pick(p.Lang, v)
}
