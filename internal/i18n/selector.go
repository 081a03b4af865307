package i18n

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Leonard-ssj/portfolio/internal/storage"
)

// Selector is the active-language context of one visitor. It is created
// explicitly with the storage port it persists to, so tests can hand it an
// in-memory or no-op store.
type Selector struct {
	mu        sync.RWMutex
	lang      Lang
	store     storage.Store
	listeners []func(Lang)
}

// NewSelector restores the persisted language from store, or uses fallback
// when nothing valid is stored. Storage failures degrade to the fallback.
func NewSelector(ctx context.Context, store storage.Store, fallback Lang) *Selector {
	if !fallback.Valid() {
		fallback = Default
	}
	if store == nil {
		store = storage.Nop{}
	}
	s := &Selector{lang: fallback, store: store}

	raw, ok, err := store.Get(ctx, storage.KeyLang)
	switch {
	case err != nil:
		slog.Debug("language store unavailable, using fallback", "error", err, "lang", fallback)
	case ok:
		if l := Lang(raw); l.Valid() {
			s.lang = l
		}
	}
	return s
}

// Lang returns the active language.
func (s *Selector) Lang() Lang {
	if s == nil {
		return Default
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set switches the active language and writes it back to the store. A
// failed write keeps the change for the current session only.
func (s *Selector) Set(ctx context.Context, lang Lang) error {
	if !lang.Valid() {
		return ErrUnsupportedLang
	}
	s.mu.Lock()
	s.lang = lang
	listeners := append([]func(Lang){}, s.listeners...)
	s.mu.Unlock()

	if err := s.store.Set(ctx, storage.KeyLang, string(lang)); err != nil {
		slog.Warn("failed to persist language", "error", err, "lang", lang)
	}
	for _, fn := range listeners {
		fn(lang)
	}
	return nil
}

// Toggle switches between the two languages.
func (s *Selector) Toggle(ctx context.Context) Lang {
	next := s.Lang().Other()
	_ = s.Set(ctx, next)
	return next
}

// OnChange registers fn to run after every successful Set.
func (s *Selector) OnChange(fn func(Lang)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

type selectorKey struct{}

// WithSelector stores s in ctx.
func WithSelector(ctx context.Context, s *Selector) context.Context {
	return context.WithValue(ctx, selectorKey{}, s)
}

// FromContext returns the Selector stored in ctx, or nil.
func FromContext(ctx context.Context) *Selector {
	s, _ := ctx.Value(selectorKey{}).(*Selector)
	return s
}
