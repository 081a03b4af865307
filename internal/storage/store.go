package storage

import (
	"context"
	"errors"
)

// Keys persisted through the storage port.
const (
	KeyLang      = "portfolio-lang"
	KeyBestScore = "miniGameBest"
)

// ErrUnavailable is returned by adapters that cannot reach their backing medium.
var ErrUnavailable = errors.New("storage unavailable")

// Store is the key/value port used for small per-visitor preferences.
// Get reports ok=false when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
