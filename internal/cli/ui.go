// Package cli provides the TUI launch command.
package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/schemelint/schemelint/internal/audit"
	"github.com/schemelint/schemelint/internal/tui"
)

func init() {
	rootCmd.AddCommand(uiCmd)
}

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Browse the contrast report interactively",
	Long:  "Launch the interactive terminal browser for the contrast audit report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hasTTY() {
			return errors.New("ui requires an interactive terminal; use the plain report or export instead")
		}

		report, err := audit.Run()
		if err != nil {
			return err
		}
		return tui.Run(report)
	},
}

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
