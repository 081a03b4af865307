package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/Leonard-ssj/portfolio/internal/collection"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var collectionLimit int

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Work with request collections",
}

var collectionSummarizeCmd = &cobra.Command{
	Use:   "summarize <file>",
	Short: "Summarize a Postman collection",
	Long: `Print the name, schema, request and variable counts of a Postman
collection, followed by its requests flattened with their folder path.

Example:
  portfolio-cli collection summarize web/static/docs/postman-collection.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		if len(data) > collection.MaxSize {
			return fmt.Errorf("%s: larger than %d bytes", args[0], collection.MaxSize)
		}
		s, err := collection.Summarize(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "name:      %s\nschema:    %s\nrequests:  %d\nvariables: %d\nkeys:      %v\n\n",
			s.Name, s.Schema, s.RequestCount, s.VariableCount, s.RawKeys)

		rows, truncated := s.Preview(collectionLimit)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Method, r.Name, r.URL)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if truncated {
			fmt.Fprintf(out, "showing first %d of %d\n", len(rows), s.RequestCount)
		}
		return nil
	},
}

func init() {
	collectionSummarizeCmd.Flags().IntVar(&collectionLimit, "limit", collection.PreviewLimit, "maximum requests to print")
	collectionCmd.AddCommand(collectionSummarizeCmd)
	rootCmd.AddCommand(collectionCmd)
}
