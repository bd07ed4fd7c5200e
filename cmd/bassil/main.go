package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bassil/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "bassil",
	Short: "Bassil language front end",
	Long:  `Bassil tokenizes source files and renders caret-marked diagnostics`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("log-level", "warn", "log verbosity (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writerIsTerminal probes the writer the output actually goes to. Anything
// that is not an *os.File (a buffer in tests, a redirected cobra stream)
// cannot render escapes.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// colorEnabled resolves the tri-state --color flag against the stream it
// will write to.
func colorEnabled(cmd *cobra.Command, out io.Writer) bool {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return writerIsTerminal(out)
	}
}

// buildLogger configures the process logger from the persistent flags.
func buildLogger(cmd *cobra.Command) (logrus.FieldLogger, error) {
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return nil, err
	}
	levelStr, err := cmd.Root().PersistentFlags().GetString("log-level")
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if quiet {
		logger.SetLevel(logrus.ErrorLevel)
		return logger, nil
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	logger.SetLevel(level)
	return logger, nil
}
