package spellcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/redactyl/spellcheck/internal/logging"
)

var version = "0.1.0"

const usageText = `Usage: spellcheck <input_file> [dictionary_path] <exception_file>
Example: spellcheck document.txt /path/to/ru_RU.zip exceptions.txt
`

// options holds the flag values of one command tree.
type options struct {
	format      string
	output      string
	humanReport string
	failOn      string
	locale      string
	dictDirs    []string
	configPath  string
	noColor     bool
	logLevel    string
	logFormat   string
}

// exitError ends the run with a specific status and no error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "spellcheck <input_file> [dictionary_path] <exception_file>",
		Short: "Check a text file for misspelled words",
		Long: "spellcheck looks every Cyrillic word of a text file up in a Hunspell dictionary, " +
			"marks words from the exception list as informational and prints a GitLab Code Quality report.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initLogging(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.format, "format", "", "output format: codequality|json|text|table|sarif (default codequality)")
	f.StringVarP(&opts.output, "output", "o", "", "also write the Code Quality report to this file")
	f.StringVar(&opts.humanReport, "human-report", "", "also write a plain-text report to this file")
	f.StringVar(&opts.failOn, "fail-on", "", "exit 1 when a finding is at or above this severity: info|major")
	f.StringVar(&opts.locale, "locale", "", "system dictionary locale when no dictionary path is given (default ru_RU)")
	f.StringArrayVar(&opts.dictDirs, "dict-dir", nil, "directory (or glob) searched for system dictionaries; repeatable")
	f.StringVar(&opts.configPath, "config", "", "path to a YAML config file")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text|json")

	cmd.AddCommand(newVersionCmd(), newCICmd(), newConfigCmd(opts))
	return cmd
}

func initLogging(w io.Writer, level, format string) error {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	fmtKind, err := logging.ParseFormat(format)
	if err != nil {
		return err
	}
	logging.Init(w, lvl, fmtKind)
	return nil
}

// Execute runs the spellcheck CLI. It should be called by the main package.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	fmt.Fprintln(stderr, "error:", err)
	return 2
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the spellcheck version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "spellcheck", version)
			return err
		},
	}
}
