package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/tracker"
	"github.com/ramanasai/mindtrack/internal/ui"
	"github.com/ramanasai/mindtrack/internal/wellness"
)

var (
	chartMetric string
	chartWidth  int
	chartHeight int
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Plot one metric over time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := wellness.ParseMetric(chartMetric)
		if err != nil {
			return err
		}
		repo, release, err := openRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		series := tracker.Project(repo.All(), m, projectOptions())
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderChart(series, chartWidth, chartHeight, ui.ThemeByName(cfg.Theme)))
		return nil
	},
}

func init() {
	chartCmd.Flags().StringVarP(&chartMetric, "metric", "m", "mood", "mood|sleep|stress")
	chartCmd.Flags().IntVarP(&chartWidth, "width", "w", 80, "Chart width in columns")
	chartCmd.Flags().IntVar(&chartHeight, "height", 10, "Chart height in rows")
}
