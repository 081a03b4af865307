package minigame

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Leonard-ssj/portfolio/internal/storage"
)

// MaxBest caps the persisted best score.
const MaxBest = 9999

// BestScore reads and writes the best score through the storage port.
type BestScore struct {
	store storage.Store
}

func NewBestScore(store storage.Store) *BestScore {
	if store == nil {
		store = storage.Nop{}
	}
	return &BestScore{store: store}
}

// Load returns the stored best, clamped to [0, MaxBest]. Missing, unreadable,
// malformed or non-finite values read as 0.
func (b *BestScore) Load(ctx context.Context) int {
	raw, ok, err := b.store.Get(ctx, storage.KeyBestScore)
	if err != nil {
		slog.Debug("best score unavailable", "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return clamp(int(math.Max(math.Min(f, MaxBest), 0)))
}

// Save persists score, clamped to [0, MaxBest].
func (b *BestScore) Save(ctx context.Context, score int) error {
	return b.store.Set(ctx, storage.KeyBestScore, strconv.Itoa(clamp(score)))
}

func clamp(n int) int {
	return min(max(n, 0), MaxBest)
}
