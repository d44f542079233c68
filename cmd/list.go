package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/utils"
)

var (
	listFormat  string
	listPage    string
	listPerPage int
	listShowID  bool
)

// listCmd prints entries most recently submitted first.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := listFormat
		if !cmd.Flags().Changed("format") {
			format = cfg.Display.Format
		}
		f, err := utils.ParseFormat(format)
		if err != nil {
			return err
		}

		repo, release, err := openRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		recent := repo.Recent()
		probe := utils.NewPagination(len(recent), listPerPage, 1)
		page, err := utils.ParsePage(listPage, probe.TotalPages)
		if err != nil {
			return err
		}
		p := utils.NewPagination(len(recent), listPerPage, page)
		lo, hi := p.Bounds()

		rc := utils.DefaultRenderConfig()
		rc.Format = f
		rc.ShowID = listShowID
		out, err := utils.NewRenderer(rc).RenderEntryList(&utils.EntryList{
			Entries:    recent[lo:hi],
			Total:      p.Total,
			Page:       p.Current,
			PerPage:    p.PerPage,
			TotalPages: p.TotalPages,
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "default", "Output format: default|table|json|csv|yaml|compact|quiet")
	listCmd.Flags().StringVarP(&listPage, "page", "p", "1", "Page number, or first/last")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 20, "Entries per page (0 for all)")
	listCmd.Flags().BoolVar(&listShowID, "ids", false, "Show entry ids")
}
