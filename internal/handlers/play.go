package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/middleware"
	"github.com/Leonard-ssj/portfolio/internal/minigame"
	"github.com/Leonard-ssj/portfolio/internal/storage"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/labstack/echo/v4"
)

const writeTimeout = 5 * time.Second

// Command is a message sent by the game board.
type Command struct {
	Type       string              `json:"type"`
	Cell       int                 `json:"cell"`
	Difficulty minigame.Difficulty `json:"difficulty"`
}

// PlayHandler runs one mini-game per live connection.
type PlayHandler struct {
	base    context.Context
	store   *storage.FileStore
	options minigame.Options
}

// NewPlayHandler creates a PlayHandler. Games stop when base is cancelled;
// best scores are kept per visitor in store.
func NewPlayHandler(base context.Context, store *storage.FileStore, opts minigame.Options) *PlayHandler {
	return &PlayHandler{base: base, store: store, options: opts}
}

// ServeWS upgrades the request and plays until the client disconnects.
// Disconnecting unmounts the game, which stops its loops.
func (h *PlayHandler) ServeWS(c echo.Context) error {
	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Same-origin pages only connect through site.js; no cross-origin checks.
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return nil
	}
	defer conn.CloseNow()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	stopOnShutdown := context.AfterFunc(h.base, cancel)
	defer stopOnShutdown()

	log := middleware.FromContext(ctx)
	visitor := middleware.VisitorID(c)

	updates := make(chan minigame.Snapshot, 1)
	opts := h.options
	opts.Best = minigame.NewBestScore(h.bestStore(visitor))
	opts.OnChange = func(s minigame.Snapshot) { latest(updates, s) }
	game := minigame.New(ctx, opts)
	defer game.Stop()

	latest(updates, game.Snapshot())
	go h.writePump(ctx, cancel, conn, updates)

	for {
		var cmd Command
		if err := wsjson.Read(ctx, conn, &cmd); err != nil {
			if s := websocket.CloseStatus(err); s == websocket.StatusNormalClosure || s == websocket.StatusGoingAway || ctx.Err() != nil {
				log.Debug("play connection closed")
			} else {
				log.Warn("play read failed", "error", err)
			}
			return nil
		}
		h.apply(ctx, game, cmd)
	}
}

func (h *PlayHandler) apply(ctx context.Context, game *minigame.Game, cmd Command) {
	log := middleware.FromContext(ctx)
	var err error
	switch cmd.Type {
	case "start":
		err = game.Start(ctx)
	case "tap":
		game.Tap(cmd.Cell)
	case "reset":
		game.Reset()
	case "difficulty":
		err = game.SetDifficulty(cmd.Difficulty)
	default:
		log.Debug("unknown play command", "type", cmd.Type)
	}
	if err != nil && !errors.Is(err, minigame.ErrRunning) {
		log.Debug("play command rejected", "type", cmd.Type, "error", err)
	}
}

func (h *PlayHandler) writePump(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, updates <-chan minigame.Snapshot) {
	defer cancel()
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-updates:
			wctx, done := context.WithTimeout(ctx, writeTimeout)
			err := wsjson.Write(wctx, conn, s)
			done()
			if err != nil {
				return
			}
		}
	}
}

func (h *PlayHandler) bestStore(visitor string) storage.Store {
	if h.store == nil || visitor == "" {
		return storage.NewMemory(nil)
	}
	return h.store.Namespace(visitor)
}

// latest replaces any unsent snapshot with s. Only the newest state matters
// to the board.
func latest(ch chan minigame.Snapshot, s minigame.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
