package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	paymaplog "github.com/davetashner/paymap/internal/log"
)

// Global flag values.
var (
	verbose bool
	quiet   bool
	noColor bool
)

// rootCmd is the base command for paymap.
var rootCmd = &cobra.Command{
	Use:   "paymap",
	Short: "Generate interactive maps of national payment systems",
	Long: `Paymap turns a tabular dataset of national digital payment systems into a
single self-contained HTML map with eight switchable visualization layers
(payment type, operator, status, participation, settlement, scope, QR
support). All data is embedded in the artifact; viewing it needs nothing
but a browser.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		paymaplog.Setup(verbose, quiet)
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
