package main

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pokedex/browser/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the catalog in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := loadContainer(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		// Log lines would tear the alternate screen.
		log.SetOutput(io.Discard)

		return tui.Run(cmd.Context(), app.NewListScreen(), app.NewDetailScreen())
	},
}
