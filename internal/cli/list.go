// Package cli provides the scheme listing command.
package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/schemelint/schemelint/internal/scheme"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in color schemes",
	Long:  "List the built-in color schemes and the role colors they define.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.OutOrStdout())
	},
}

// listRoles are the text roles every scheme defines, in column order.
var listRoles = []scheme.Role{
	scheme.RoleBackground,
	scheme.RoleForeground,
	scheme.RoleComment,
}

func runList(out io.Writer) error {
	headers := []string{"SCHEME"}
	for _, role := range listRoles {
		headers = append(headers, strings.ToUpper(role.Base16Key()))
	}
	headers = append(headers, "ACCENTS")

	rows := make([][]string, 0, len(scheme.All()))
	for _, s := range scheme.All() {
		row := []string{s.Name}
		for _, role := range listRoles {
			row = append(row, s.Colors[role])
		}
		row = append(row, formatYesNo(s.HasAccents()))
		rows = append(rows, row)
	}

	return writeTable(out, headers, rows)
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
