package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/reviewstars/internal/rating"
	"github.com/dshills/reviewstars/internal/render"
	"github.com/dshills/reviewstars/internal/theme"
)

// previewScore shows every fill kind in a five-star preview.
const previewScore = 3.5

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List built-in star themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := theme.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				th, err := theme.LoadBuiltin(name)
				if err != nil {
					return err
				}
				preview := render.Stars(rating.Render(previewScore, rating.DefaultMax), render.Options{
					Theme:     th,
					Color:     colorEnabled(out, false),
					ShowScore: false,
				})
				fmt.Fprintf(out, "%-8s %s  %s\n", th.Name, preview, th.Description)
			}
			return nil
		},
	}
}
