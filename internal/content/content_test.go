package content

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/web"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embedded(t *testing.T) []byte {
	t.Helper()
	data, err := web.Content.ReadFile("content/" + DefaultFile)
	require.NoError(t, err)
	return data
}

func TestLoadEmbedded(t *testing.T) {
	site, err := Load(afero.FromIOFS{FS: web.Content}, "content/"+DefaultFile)
	require.NoError(t, err)

	assert.Equal(t, "Leonardo Alonso Aldana", site.Profile.Name)
	assert.Len(t, site.Nav.Anchors, 9)
	assert.Len(t, site.Nav.Labels[i18n.EN], 9)
	assert.Len(t, site.Hero.Roles[i18n.ES], 4)
	assert.Len(t, site.Skills.Categories[i18n.EN], 11)
	assert.Len(t, site.Experience.Items[i18n.ES], 2)
	assert.Len(t, site.Projects.Items[i18n.ES], 4)
	assert.Len(t, site.Notes.Posts, 4)
	assert.Equal(t, DocJSON, site.Docs.Items[i18n.ES][3].Type)
	assert.Equal(t, "Back to home", site.Label(i18n.Fixed(i18n.EN), "backHome"))
	assert.Equal(t, "unknown-id", site.Label(i18n.Fixed(i18n.EN), "unknown-id"))
}

func TestParseRejects(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := Parse(nil)
		assert.ErrorIs(t, err, ErrInvalid)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse([]byte("profile:\n  nickname: x\n"))
		assert.Error(t, err)
	})

	t.Run("missing language branch", func(t *testing.T) {
		data := bytes.Replace(embedded(t), []byte(`    en: "Back to top"`), nil, 1)
		_, err := Parse(data)
		require.Error(t, err)
		assert.ErrorIs(t, err, i18n.ErrParity)
		assert.Contains(t, err.Error(), "footer.backToTop")
	})
}

func TestValidateReferences(t *testing.T) {
	site := &Site{
		Nav: Nav{
			Labels:  i18n.Localized[[]string]{i18n.ES: {"Inicio"}, i18n.EN: {"Home"}},
			Anchors: []string{"hero", "about"},
		},
		NotesPreview: NotesPreview{Highlights: []string{"missing"}},
		Notes: Notes{Posts: []Note{
			{Slug: "a", Title: Text{i18n.ES: "a", i18n.EN: "a"}},
			{Slug: "a", Title: Text{i18n.ES: "b", i18n.EN: "b"}},
			{Title: Text{i18n.ES: "c", i18n.EN: "c"}},
		}},
	}
	err := Validate(site)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "nav has 1 es labels for 2 anchors")
	assert.Contains(t, msg, `duplicate note slug "a"`)
	assert.Contains(t, msg, "note 2 has no slug")
	assert.Contains(t, msg, `highlight "missing" does not match any note`)
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFile)
	original := embedded(t)
	require.NoError(t, os.WriteFile(path, original, 0o644))

	site, err := Load(afero.NewOsFs(), path)
	require.NoError(t, err)
	p := NewProvider(site)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Watch(ctx, p, dir) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	updated := bytes.Replace(original, []byte(`name: "Leonardo Alonso Aldana"`), []byte(`name: "Leo Alonso"`), 1)
	assert.Eventually(t, func() bool {
		// Rewrite until the watcher is registered and picks it up.
		_ = os.WriteFile(path, updated, 0o644)
		return p.Site().Profile.Name == "Leo Alonso"
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("profile: [broken"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, "Leo Alonso", p.Site().Profile.Name, "invalid content keeps the previous tree")
}
