package cmd

import (
	"os"
	"path/filepath"

	"github.com/Leonard-ssj/portfolio/internal/content"
	"github.com/Leonard-ssj/portfolio/web"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var contentDir string

var rootCmd = &cobra.Command{
	Use:   "portfolio-cli",
	Short: "Portfolio content tooling",
	Long: `portfolio-cli inspects the content the portfolio site serves.

Available commands:
  content validate      Load the content tree and check language parity
  notes list            Search notes by text and category
  notes show <slug>     Print a note with its table of contents
  collection summarize  Summarize a Postman collection file
  version               Print the version

Content is read from the copy embedded in the binary unless --dir points
to a directory holding site.yaml.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "dir", "", "directory containing site.yaml (default: embedded content)")
}

func loadSite() (*content.Site, error) {
	if contentDir != "" {
		return content.Load(afero.NewOsFs(), filepath.Join(contentDir, content.DefaultFile))
	}
	return content.Load(afero.FromIOFS{FS: web.Content}, "content/"+content.DefaultFile)
}
