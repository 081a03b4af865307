package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	contentDir, notesLang, notesQuery, notesCategory = "", "es", "", ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio-cli v"+version+"\n", out)
}

func TestContentValidate(t *testing.T) {
	t.Run("embedded content", func(t *testing.T) {
		out, err := run(t, "content", "validate")
		require.NoError(t, err)
		assert.Contains(t, out, "content OK")
		assert.Contains(t, out, "notes: 4")
	})

	t.Run("parity error from disk", func(t *testing.T) {
		dir := t.TempDir()
		yaml := "footer:\n  copyright: x\n  backToTop:\n    es: Volver\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(yaml), 0o644))

		_, err := run(t, "content", "validate", "--dir", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "$.footer.backToTop")
	})
}

func TestNotes(t *testing.T) {
	t.Run("list filters by query", func(t *testing.T) {
		out, err := run(t, "notes", "list", "--lang", "en", "--query", "zzzz")
		require.NoError(t, err)
		assert.Contains(t, out, "0 result(s)")
	})

	t.Run("show prints the table of contents", func(t *testing.T) {
		out, err := run(t, "notes", "show", "como-documento-una-solucion")
		require.NoError(t, err)
		assert.Contains(t, out, "#1-requerimientos")
		assert.Contains(t, out, "min lectura")
	})

	t.Run("show unknown slug", func(t *testing.T) {
		_, err := run(t, "notes", "show", "nope")
		assert.ErrorContains(t, err, "note not found")
	})

	t.Run("unsupported language", func(t *testing.T) {
		_, err := run(t, "notes", "list", "--lang", "fr")
		assert.Error(t, err)
	})
}

func TestCollectionSummarize(t *testing.T) {
	out, err := run(t, "collection", "summarize", filepath.Join("..", "..", "..", "web", "static", "docs", "postman-collection.json"))
	require.NoError(t, err)
	assert.Contains(t, out, "name:      CRM API")
	assert.Contains(t, out, "requests:  8")
	assert.Contains(t, out, "GET     Tenants / Current tenant")
}
