package i18n

// Localized carries one value per supported language.
type Localized[T any] map[Lang]T

// Text is the common case of a localized string.
type Text = Localized[string]

// Localizer is anything that knows the active language.
type Localizer interface {
	Lang() Lang
}

// In returns the branch for lang, falling back to the default language.
func (v Localized[T]) In(lang Lang) T {
	if t, ok := v[lang]; ok {
		return t
	}
	return v[Default]
}

// Pick projects v onto the language that l currently selects.
func Pick[T any](l Localizer, v Localized[T]) T {
	if l == nil {
		return v.In(Default)
	}
	return v.In(l.Lang())
}

// Fixed is a Localizer pinned to one language, used outside of requests.
type Fixed Lang

func (f Fixed) Lang() Lang { return Lang(f) }
