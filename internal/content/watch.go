package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watch reloads the content file in dir whenever it changes on disk and
// swaps it into p. A tree that fails validation is logged and ignored, so
// the last good tree keeps serving. Watch blocks until ctx is done.
func Watch(ctx context.Context, p *Provider, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	slog.Info("watching content for changes", "dir", dir)

	fsys := afero.NewOsFs()
	target := filepath.Join(dir, DefaultFile)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(target) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(p, fsys, target)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("content watcher error", "error", err)
		}
	}
}

func reload(p *Provider, fsys afero.Fs, path string) {
	site, err := Load(fsys, path)
	if err != nil {
		slog.Error("content reload rejected, keeping previous version", "error", err)
		return
	}
	p.Replace(site)
	slog.Info("content reloaded", "path", path)
}
