// Package cli provides the JSON export command.
package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/schemelint/schemelint/internal/audit"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the contrast audit as JSON",
	Long:  "Run the full contrast audit and write the report as JSON for automation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.OutOrStdout())
	},
}

func runExport(out io.Writer) error {
	report, err := audit.Run()
	if err != nil {
		return err
	}

	logger.Debug().Str("report_id", report.ID).Msg("exporting report")

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}
