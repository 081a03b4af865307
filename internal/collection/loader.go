package collection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
	"time"
)

// MaxSize bounds the collection documents the loader will read.
const MaxSize = 5 << 20

// Status is the lifecycle of a deferred preview.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Source opens collection documents by href.
type Source interface {
	Open(ctx context.Context, href string) (io.ReadCloser, error)
}

// FSSource serves same-origin hrefs ("/docs/x.json") from a filesystem
// rooted at the static directory.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Open(ctx context.Context, href string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := strings.TrimPrefix(href, "/")
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid document path %q", href)
	}
	return s.FS.Open(name)
}

// HTTPSource fetches absolute URLs.
type HTTPSource struct {
	Client *http.Client
}

func (s HTTPSource) Open(ctx context.Context, href string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		return nil, err
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: status %d", href, resp.StatusCode)
	}
	return resp.Body, nil
}

// Loader fetches and summarizes collections. Relative hrefs go to Local,
// absolute http(s) URLs to Remote.
type Loader struct {
	Local   Source
	Remote  Source
	Timeout time.Duration
}

var ErrNoSource = errors.New("no source for document")

// Load fetches href and summarizes it. It honors ctx cancellation, so a
// caller that went away gets ctx.Err() instead of a stale result.
func (l *Loader) Load(ctx context.Context, href string) (Summary, error) {
	if l.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.Timeout)
		defer cancel()
	}

	src := l.Local
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		src = l.Remote
	}
	if src == nil {
		return Summary{}, fmt.Errorf("%w: %s", ErrNoSource, href)
	}

	rc, err := src.Open(ctx, href)
	if err != nil {
		return Summary{}, fmt.Errorf("open %s: %w", href, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxSize+1))
	if err != nil {
		return Summary{}, fmt.Errorf("read %s: %w", href, err)
	}
	if len(data) > MaxSize {
		return Summary{}, fmt.Errorf("%w: %s exceeds %d bytes", ErrMalformed, href, MaxSize)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	return Summarize(data)
}
