package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/Leonard-ssj/portfolio/internal/i18n"
	"github.com/Leonard-ssj/portfolio/internal/markdown"
	"github.com/Leonard-ssj/portfolio/internal/notes"
	"github.com/spf13/cobra"
)

var (
	notesLang     string
	notesQuery    string
	notesCategory string
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Browse the notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes matching a query",
	Long: `List the notes whose title or summary contains --query and whose
category equals --category, in the language given by --lang.

Examples:
  portfolio-cli notes list
  portfolio-cli notes list --lang en --query api
  portfolio-cli notes list --category Arquitectura`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := i18n.Parse(notesLang)
		if err != nil {
			return err
		}
		site, err := loadSite()
		if err != nil {
			return err
		}
		results := notes.Filter(site.Notes.Posts, lang, notes.Query{Text: notesQuery, Category: notesCategory})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tDATE\tCATEGORY\tMIN\tTITLE")
		for _, n := range results {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", n.Slug, n.Date, n.Category.In(lang),
				notes.ReadMinutes(n.Content.In(lang)), n.Title.In(lang))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", len(results), site.Label(i18n.Fixed(lang), "results"))
		return nil
	},
}

var notesShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, err := i18n.Parse(notesLang)
		if err != nil {
			return err
		}
		site, err := loadSite()
		if err != nil {
			return err
		}
		n, err := notes.BySlug(site.Notes.Posts, args[0])
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		body := n.Content.In(lang)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n%s · %s · %d %s\n\n", n.Title.In(lang), n.Date, n.Category.In(lang),
			notes.ReadMinutes(body), site.Label(i18n.Fixed(lang), "minRead"))
		fmt.Fprint(out, markdown.Plain(markdown.Parse(body)))
		return nil
	},
}

func init() {
	notesCmd.PersistentFlags().StringVar(&notesLang, "lang", string(i18n.Default), "language of the output (es, en)")
	notesListCmd.Flags().StringVarP(&notesQuery, "query", "q", "", "text to search in title and summary")
	notesListCmd.Flags().StringVar(&notesCategory, "category", "", "exact category name in the chosen language")

	notesCmd.AddCommand(notesListCmd, notesShowCmd)
	rootCmd.AddCommand(notesCmd)
}
