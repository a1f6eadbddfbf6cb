package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/davetashner/paymap/internal/config"
	"github.com/davetashner/paymap/internal/dataset"
	"github.com/davetashner/paymap/internal/geo"
	"github.com/davetashner/paymap/internal/layer"
	"github.com/davetashner/paymap/internal/output"
)

// Page chrome baked into the artifact. The title names the filtered view;
// --all-systems drops the qualifier.
const (
	filteredTitle   = "Real-Time Payment Systems Map (Implemented)"
	allSystemsTitle = "Payment Systems Map"
	mapCaption      = "Click markers for details. Switch layers to explore different attributes."
)

// Generate-specific flag values.
var (
	generateInput      string
	generateOutput     string
	generateFormat     string
	generateAllSystems bool
	generateOverrides  string
)

// generateCmd builds the map artifact from the dataset.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the payment systems map artifact",
	Long: `Read the payment systems dataset, group records by country, and write a
single self-contained artifact (HTML map or JSON export).

By default only rows describing an active real-time payment system with
"Implemented" status are kept; pass --all-systems to map every row.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateInput, "input", "i", "dpi-payments.csv", "input dataset (CSV with a header row)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "index.html", "output file path (overwritten if present)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "html", "output format (html, json)")
	generateCmd.Flags().BoolVar(&generateAllSystems, "all-systems", false, "map all rows, not just active+implemented systems")
	generateCmd.Flags().StringVar(&generateOverrides, "overrides", "", "TOML file adding country aliases and coordinates")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	// 1. Merge .paymap.yaml values into flags left at their defaults.
	fileCfg, err := config.Load(".")
	if err != nil {
		return exitError(ExitInvalidArgs, "paymap: cannot read %s (%v)", config.FileName, err)
	}
	applyConfig(cmd.Flags(), fileCfg)

	// 2. Resolve the output formatter before doing any work.
	formatter, err := output.GetFormatter(generateFormat)
	if err != nil {
		return exitError(ExitInvalidArgs, "paymap: %v", err)
	}

	// 3. Optional alias/coordinate overrides.
	overrides, err := geo.LoadOverrides(generateOverrides)
	if err != nil {
		return exitError(ExitInvalidArgs, "paymap: %v", err)
	}

	// 4. Load and group the dataset.
	opts := dataset.Options{
		FilterActiveImplemented: !generateAllSystems,
		Aliases:                 overrides.Aliases,
	}
	groups, err := dataset.Load(generateInput, opts)
	if err != nil {
		return exitError(ExitDataFailure, "paymap: %v", err)
	}
	slog.Info("dataset grouped", "countries", len(groups), "systems", groups.TotalSystems())

	// 5. Derive markers and legends for all eight layers.
	doc := &output.MapDocument{
		Title:       filteredTitle,
		Caption:     mapCaption,
		Coordinates: geo.Coordinates(),
		Layers:      layer.BuildAll(groups),
		Legends:     layer.Legends(),
	}
	if generateAllSystems {
		doc.Title = allSystemsTitle
	}
	overrides.Apply(doc.Coordinates)

	// 6. Countries without coordinates render no marker; say so once here
	// rather than failing, since partial input must never abort the run.
	unmapped := unmappedCountries(groups, doc.Coordinates)
	for _, country := range unmapped {
		slog.Warn("no coordinates for country, marker will not render", "country", country)
	}

	// 7. Write the artifact.
	if err := writeArtifact(formatter, doc, generateOutput); err != nil {
		return exitError(ExitDataFailure, "paymap: %v", err)
	}

	printSummary(cmd, groups, unmapped)
	return nil
}

// applyConfig copies file config values into flags the user did not set
// explicitly. Command-line flags always win.
func applyConfig(flags *pflag.FlagSet, cfg *config.Config) {
	if !flags.Changed("input") && cfg.Input != "" {
		generateInput = cfg.Input
	}
	if !flags.Changed("output") && cfg.Output != "" {
		generateOutput = cfg.Output
	}
	if !flags.Changed("format") && cfg.Format != "" {
		generateFormat = cfg.Format
	}
	if !flags.Changed("all-systems") && cfg.AllSystems != nil {
		generateAllSystems = *cfg.AllSystems
	}
	if !flags.Changed("overrides") && cfg.Overrides != "" {
		generateOverrides = cfg.Overrides
	}
}

// unmappedCountries returns, in sorted order, grouped countries that have no
// entry in the coordinate table.
func unmappedCountries(groups dataset.CountryGroups, coords map[string][2]float64) []string {
	var missing []string
	for _, country := range groups.Countries() {
		if _, ok := coords[country]; !ok {
			missing = append(missing, country)
		}
	}
	return missing
}

// writeArtifact creates (or truncates) path and runs the formatter into it.
func writeArtifact(formatter output.Formatter, doc *output.MapDocument, path string) error {
	f, err := os.Create(path) //nolint:gosec // user-provided output path
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := formatter.Format(doc, f); err != nil {
		f.Close() //nolint:errcheck,gosec // already failing
		return fmt.Errorf("format %s: %w", formatter.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// printSummary writes the human-facing run summary to stdout.
func printSummary(cmd *cobra.Command, groups dataset.CountryGroups, unmapped []string) {
	w := cmd.OutOrStdout()
	green := color.New(color.FgGreen)
	bold := color.New(color.Bold)

	fmt.Fprintln(w, green.Sprintf("Map generated successfully: %s", generateOutput))
	fmt.Fprintf(w, "Total countries mapped: %s\n", bold.Sprintf("%d", len(groups)))
	fmt.Fprintf(w, "Total payment systems: %s\n", bold.Sprintf("%d", groups.TotalSystems()))
	if len(unmapped) > 0 {
		fmt.Fprintf(w, "Countries without coordinates: %d\n", len(unmapped))
	}
}

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		msg = "paymap: error"
	}
	return &exitCodeError{code: code, msg: msg}
}
