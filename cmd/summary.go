package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/utils"
)

// summaryCmd prints the latest reading of each dimension.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Latest mood, sleep and stress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, release, err := openRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		cards := tracker.Summarize(repo.All())
		fmt.Fprintln(cmd.OutOrStdout(), utils.NewRenderer(nil).RenderCards(cards))
		return nil
	},
}
