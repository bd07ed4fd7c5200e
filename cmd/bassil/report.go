package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"bassil/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report FILE LINE START END MESSAGE",
	Short: "Render a caret-marked diagnostic for a file position",
	Long: `Report prints the given line of FILE with a caret marker under the
inclusive column range START-END, followed by MESSAGE. Columns are 1-based.`,
	Args: cobra.ExactArgs(5),
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	path := args[0]
	line, err := parseU32(args[1], "LINE")
	if err != nil {
		return err
	}
	startCol, err := parseU32(args[2], "START")
	if err != nil {
		return err
	}
	endCol, err := parseU32(args[3], "END")
	if err != nil {
		return err
	}
	msg := args[4]

	out := cmd.OutOrStdout()
	r := report.NewRenderer(out, report.Options{
		Decorate:  colorEnabled(cmd, out),
		Available: writerIsTerminal(out),
	})
	return r.Report(path, line, startCol, endCol, msg)
}

func parseU32(s, name string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", name, s)
	}
	return uint32(v), nil
}
