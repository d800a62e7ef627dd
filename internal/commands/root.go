package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cbcr-dev/cbcrgen/internal/buildinfo"
	"github.com/cbcr-dev/cbcrgen/internal/importer"
	"github.com/cbcr-dev/cbcrgen/internal/model"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "cbcrgen",
		Short:   "EU country-by-country tax report converter",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newValidateCommand())
	rootCmd.AddCommand(newServeCommand())

	return rootCmd
}

// parseWorkbook opens and parses a spreadsheet file with the default
// parser registry.
func parseWorkbook(path string) (*model.Workbook, error) {
	registry := importer.DefaultRegistry()
	parser := registry.ForFilename(path)
	if parser == nil {
		return nil, fmt.Errorf("unsupported file type: %s (expected .xlsx or .xls)", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	wb, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return wb, nil
}
