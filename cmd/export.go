package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ramanasai/mindtrack/internal/utils"
)

var exportFormat string

// exportCmd dumps the whole collection in insertion order.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all entries (json, yaml or csv)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := utils.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		switch f {
		case utils.FormatJSON, utils.FormatYAML, utils.FormatCSV:
		default:
			return fmt.Errorf("export supports json, yaml or csv, not %q", exportFormat)
		}

		repo, release, err := openRepository(cmd.Context())
		if err != nil {
			return err
		}
		defer release()

		all := repo.All()
		rc := utils.DefaultRenderConfig()
		rc.Format = f
		out, err := utils.NewRenderer(rc).RenderEntryList(&utils.EntryList{Entries: all, Total: len(all)})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "json|yaml|csv")
}
