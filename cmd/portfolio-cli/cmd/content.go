package cmd

import (
	"fmt"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the site content tree",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the content tree",
	Long: `Load site.yaml and run the same checks the server runs at startup:
every localized field has both languages, paired lists have equal length,
note slugs are unique and highlighted notes exist.

Examples:
  portfolio-cli content validate
  portfolio-cli content validate --dir ./web/content`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return fmt.Errorf("content is invalid:\n%w", err)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "content OK")
		for _, l := range i18n.Supported {
			fmt.Fprintf(out, "  %s: %d nav entries, %d projects, %d documents\n",
				l, len(site.Nav.Labels[l]), len(site.Projects.Items[l]), len(site.Docs.Items[l]))
		}
		fmt.Fprintf(out, "  notes: %d, labels: %d\n", len(site.Notes.Posts), len(site.Labels))
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentValidateCmd)
	rootCmd.AddCommand(contentCmd)
}
