package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the content file name inside a content directory.
const DefaultFile = "site.yaml"

var ErrInvalid = errors.New("invalid content")

// Load reads and validates the content tree at path in fsys.
func Load(fsys afero.Fs, path string) (*Site, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes a content tree and validates it.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the language parity of every localized value and the
// cross references inside the tree.
func Validate(site *Site) error {
	errs := []error{i18n.CheckParity(site)}

	for _, lang := range i18n.Supported {
		if n, want := len(site.Nav.Labels[lang]), len(site.Nav.Anchors); n != want {
			errs = append(errs, fmt.Errorf("%w: nav has %d %s labels for %d anchors", ErrInvalid, n, lang, want))
		}
	}

	slugs := make(map[string]bool, len(site.Notes.Posts))
	for i, p := range site.Notes.Posts {
		switch {
		case p.Slug == "":
			errs = append(errs, fmt.Errorf("%w: note %d has no slug", ErrInvalid, i))
		case slugs[p.Slug]:
			errs = append(errs, fmt.Errorf("%w: duplicate note slug %q", ErrInvalid, p.Slug))
		}
		slugs[p.Slug] = true
	}
	for _, h := range site.NotesPreview.Highlights {
		if !slugs[h] {
			errs = append(errs, fmt.Errorf("%w: highlight %q does not match any note", ErrInvalid, h))
		}
	}
	return errors.Join(errs...)
}
