package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"pokedex/browser/internal/domain"
	apperrors "pokedex/browser/internal/errors"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print the detail page of one pokemon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return apperrors.InvalidArgumentf("invalid pokemon id %q", args[0])
		}

		app, err := loadContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		view := app.NewDetailScreen().Load(cmd.Context(), id)
		if view.Err != nil {
			return view.Err
		}

		printDetail(cmd.OutOrStdout(), view.Entry)
		return nil
	},
}

func printDetail(w io.Writer, entry *domain.DetailEntry) {
	fmt.Fprintf(w, "#%03d %s (%s)\n", entry.ID, entry.Name, entry.CanonicalName)
	if entry.SpriteURL != "" {
		fmt.Fprintln(w, entry.SpriteURL)
	}

	fmt.Fprintln(w, "\nFähigkeiten")
	for _, a := range entry.Abilities {
		fmt.Fprintf(w, "  - %s\n", a.Localized)
	}

	fmt.Fprintln(w, "\nBewegungen")
	for _, m := range entry.Moves {
		fmt.Fprintf(w, "  - %s\n", m.Localized)
	}
}
