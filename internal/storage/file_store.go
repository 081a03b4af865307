package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/spf13/afero"
)

var namespacePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// FileStore persists one small JSON document per namespace on an afero filesystem.
type FileStore struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a FileStore rooted at dir inside fsys.
func NewFileStore(fsys afero.Fs, dir string) *FileStore {
	return &FileStore{fs: fsys, dir: dir}
}

// Namespace returns a Store scoped to a single visitor.
func (s *FileStore) Namespace(id string) Store {
	return &namespaced{store: s, id: id}
}

func (s *FileStore) path(id string) (string, error) {
	if !namespacePattern.MatchString(id) {
		return "", fmt.Errorf("invalid namespace %q", id)
	}
	return filepath.Join(s.dir, id+".json"), nil
}

func (s *FileStore) load(id string) (map[string]string, error) {
	p, err := s.path(id)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, p)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// A corrupt document is treated as empty and overwritten on the next Set.
		return map[string]string{}, nil
	}
	return values, nil
}

func (s *FileStore) get(id, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load(id)
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStore) set(id, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, err := s.load(id)
	if err != nil {
		return err
	}
	values[key] = value
	data, err := json.Marshal(values)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	p, _ := s.path(id)
	if err := afero.WriteFile(s.fs, p, data, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

type namespaced struct {
	store *FileStore
	id    string
}

func (n *namespaced) Get(_ context.Context, key string) (string, bool, error) {
	return n.store.get(n.id, key)
}

func (n *namespaced) Set(_ context.Context, key, value string) error {
	return n.store.set(n.id, key, value)
}
