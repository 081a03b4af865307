package notes

import (
	"strings"
	"testing"

	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func note(slug, titleES, titleEN, catES, catEN string) content.Note {
	return content.Note{
		Slug:     slug,
		Title:    content.Text{i18n.ES: titleES, i18n.EN: titleEN},
		Summary:  content.Text{i18n.ES: "resumen de " + slug, i18n.EN: "summary of " + slug},
		Category: content.Text{i18n.ES: catES, i18n.EN: catEN},
	}
}

var posts = []content.Note{
	note("docs", "Como documento una solucion", "How I document a solution", "Proceso", "Process"),
	note("apis", "Lecciones al integrar APIs externas", "Lessons from integrating external APIs", "Tecnico", "Technical"),
	note("jwt", "JWT, roles y autorizacion", "JWT, roles, and authorization", "Tecnico", "Technical"),
	note("tenant", "Multi-tenant: estrategia", "Multi-tenant: strategy", "Arquitectura", "Architecture"),
}

func slugs(ns []content.Note) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Slug
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		lang i18n.Lang
		q    Query
		want []string
	}{
		{"empty query keeps everything in order", i18n.ES, Query{}, []string{"docs", "apis", "jwt", "tenant"}},
		{"case-insensitive title match", i18n.EN, Query{Text: "API"}, []string{"apis"}},
		{"summary match", i18n.ES, Query{Text: "resumen de jwt"}, []string{"jwt"}},
		{"query uses the active language only", i18n.ES, Query{Text: "lessons"}, []string{}},
		{"category filter", i18n.EN, Query{Category: "Technical"}, []string{"apis", "jwt"}},
		{"category and text combine", i18n.EN, Query{Text: "jwt", Category: "Technical"}, []string{"jwt"}},
		{"category from the other language does not match", i18n.EN, Query{Category: "Tecnico"}, []string{}},
		{"no match", i18n.ES, Query{Text: "kubernetes"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slugs(Filter(posts, tt.lang, tt.q)))
		})
	}

	t.Run("whitespace is part of the query", func(t *testing.T) {
		rapid := []content.Note{note("rapid", "Prototipado rapido", "Rapid prototyping", "Proceso", "Process")}
		assert.Empty(t, Filter(rapid, i18n.EN, Query{Text: "   "}))
		assert.Empty(t, Filter(rapid, i18n.EN, Query{Text: " api"}))
		assert.Equal(t, []string{"rapid"}, slugs(Filter(rapid, i18n.EN, Query{Text: "rapid "})))
		assert.Equal(t, []string{"apis"}, slugs(Filter(posts, i18n.EN, Query{Text: " APIs"})))
	})

	t.Run("does not mutate the source", func(t *testing.T) {
		before := slugs(posts)
		_ = Filter(posts, i18n.ES, Query{Text: "jwt"})
		assert.Equal(t, before, slugs(posts))
	})
}

func TestCategories(t *testing.T) {
	assert.Equal(t, []string{"Arquitectura", "Proceso", "Tecnico"}, Categories(posts, i18n.ES))
	assert.Equal(t, []string{"Architecture", "Process", "Technical"}, Categories(posts, i18n.EN))
}

func TestBySlugAndHighlights(t *testing.T) {
	p, err := BySlug(posts, "jwt")
	require.NoError(t, err)
	assert.Equal(t, "jwt", p.Slug)

	_, err = BySlug(posts, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, []string{"tenant", "docs"}, slugs(Highlights(posts, []string{"tenant", "missing", "docs"})))
}

func TestReadMinutes(t *testing.T) {
	assert.Equal(t, 1, ReadMinutes(""))
	assert.Equal(t, 1, ReadMinutes("una palabra"))
	assert.Equal(t, 1, ReadMinutes(strings.Repeat("w ", 299)))
	assert.Equal(t, 2, ReadMinutes(strings.Repeat("w ", 300)))
	assert.Equal(t, 5, ReadMinutes(strings.Repeat("w ", 1000)))
}
