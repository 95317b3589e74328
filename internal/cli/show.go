// Package cli provides the single-scheme report command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/schemelint/schemelint/internal/audit"
	"github.com/schemelint/schemelint/internal/scheme"
)

func init() {
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <scheme>",
	Short: "Show the contrast checks for one scheme",
	Long:  "Run the contrast checks for a single built-in scheme, selected by name.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd.OutOrStdout(), args[0])
	},
}

func runShow(out io.Writer, name string) error {
	s, ok := scheme.ByName(name)
	if !ok {
		return fmt.Errorf("unknown scheme %q; run \"schemelint list\" for the available names", name)
	}

	result, err := audit.RunScheme(s)
	if err != nil {
		return err
	}

	writeSchemeSection(out, *result)
	return nil
}
