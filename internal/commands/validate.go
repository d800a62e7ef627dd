package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cbcr-dev/cbcrgen/internal/report"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <workbook>",
		Short: "Check a workbook against the reporting schema without converting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0], cmd.OutOrStdout())
		},
	}
}

func runValidate(path string, out io.Writer) error {
	wb, err := parseWorkbook(path)
	if err != nil {
		return err
	}

	problems := report.Validate(wb)
	if len(problems) == 0 {
		fmt.Fprintln(out, "Workbook is valid")
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(out, p)
	}
	return fmt.Errorf("%d problem(s) found", len(problems))
}
