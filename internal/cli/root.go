// Package cli implements the schemelint command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagVerbose bool
	flagNoColor bool
	flagFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "schemelint",
	Short: "Audit the built-in color schemes for WCAG contrast",
	Long: "schemelint computes WCAG 2.x contrast ratios between the role pairs of the\n" +
		"built-in terminal color schemes and reports AA/AAA compliance.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoot(cmd.OutOrStdout())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable ANSI colors in output")
	rootCmd.Flags().StringVar(&flagFormat, "format", "text", "report format (text or json)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
}

func runRoot(out io.Writer) error {
	switch format := outputFormat(); format {
	case "json":
		return runExport(out)
	case "text":
		return runCheck(out)
	default:
		return fmt.Errorf("unknown report format %q (want text or json)", format)
	}
}

func outputFormat() string {
	format := strings.ToLower(strings.TrimSpace(viper.GetString("format")))
	if format == "" {
		return "text"
	}
	return format
}

func initConfig() {
	viper.SetEnvPrefix("SCHEMELINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
