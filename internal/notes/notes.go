// Package notes filters and looks up the notes of the content tree.
package notes

import (
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
)

var ErrNotFound = errors.New("note not found")

// WordsPerMinute is the reading speed used for read-time estimates.
const WordsPerMinute = 200

// Query narrows a notes listing. Zero values match everything.
type Query struct {
	Text     string
	Category string
}

// Filter returns the posts whose title or summary in lang contains the query
// text as typed (case-insensitive, whitespace included) and whose category
// in lang equals the query category when one is given. Source order is
// preserved.
func Filter(posts []content.Note, lang i18n.Lang, q Query) []content.Note {
	needle := strings.ToLower(q.Text)
	out := make([]content.Note, 0, len(posts))
	for _, p := range posts {
		if q.Category != "" && p.Category.In(lang) != q.Category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title.In(lang)), needle) &&
			!strings.Contains(strings.ToLower(p.Summary.In(lang)), needle) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Categories lists the distinct categories in lang, sorted for that language.
func Categories(posts []content.Note, lang i18n.Lang) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range posts {
		c := p.Category.In(lang)
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	col := i18n.Collator(lang)
	sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i], out[j]) < 0 })
	return out
}

// BySlug finds a post by its slug.
func BySlug(posts []content.Note, slug string) (content.Note, error) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.Note{}, ErrNotFound
}

// Highlights resolves slugs in order, skipping unknown ones.
func Highlights(posts []content.Note, slugs []string) []content.Note {
	out := make([]content.Note, 0, len(slugs))
	for _, s := range slugs {
		if p, err := BySlug(posts, s); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// ReadMinutes estimates the reading time of text, never less than a minute.
func ReadMinutes(text string) int {
	words := len(strings.Fields(text))
	return max(1, int(math.Round(float64(words)/WordsPerMinute)))
}
