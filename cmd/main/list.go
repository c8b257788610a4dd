package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
	"pokedex/browser/internal/filter"
)

var (
	listSearch string
	listTags   []string
	listOffset int
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one list page, filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		selection := domain.SelectionState{Search: listSearch}
		for _, raw := range listTags {
			tag, ok := domain.ParseCategoryTag(raw)
			if !ok {
				return apperrors.InvalidArgumentf("unknown tag %q", raw)
			}
			if !selection.HasTag(tag) {
				selection = selection.Toggle(tag)
			}
		}

		app, err := loadContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		limit := listLimit
		if limit == 0 {
			limit = app.PageSizes().Initial
		}

		entries, err := app.Service.LoadPage(cmd.Context(), listOffset, limit)
		if err != nil {
			return err
		}

		visible := filter.Filter(entries, selection)
		if len(visible) == 0 && selection.Search != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "No results found for %q\n", selection.Search)
			return nil
		}

		printEntries(cmd.OutOrStdout(), visible)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listSearch, "search", "", "case-insensitive name filter")
	listCmd.Flags().StringSliceVar(&listTags, "tag", nil, "type filter, repeatable")
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "first entry to load")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "entries to load (default pagination.initial_page_size)")
}

func printEntries(w io.Writer, entries []domain.CatalogEntry) {
	for _, e := range entries {
		labels := make([]string, 0, len(e.Tags))
		for _, tag := range e.Tags {
			labels = append(labels, tag.Label())
		}
		fmt.Fprintf(w, "#%03d %-20s %s\n", e.ID, e.Name, strings.Join(labels, ", "))
	}
}
