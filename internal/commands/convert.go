package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cbcr-dev/cbcrgen/internal/id"
	"github.com/cbcr-dev/cbcrgen/internal/report"
)

func newConvertCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <workbook>",
		Short: "Convert an Excel workbook into an XHTML report with iXBRL markup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(args[0], output, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: country_by_country_report_<timestamp>.xhtml)")

	return cmd
}

func runConvert(path, output string, out, errOut io.Writer) error {
	wb, err := parseWorkbook(path)
	if err != nil {
		return err
	}

	doc, problems := report.Convert(wb)
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintln(errOut, p)
		}
		return fmt.Errorf("workbook failed validation with %d problem(s)", len(problems))
	}

	if output == "" {
		output = id.ReportFilename(time.Now())
	}
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(out, "Wrote %s\n", output)
	return nil
}
