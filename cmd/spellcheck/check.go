package spellcheck

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/redactyl/spellcheck/internal/config"
	"github.com/redactyl/spellcheck/internal/dictionary"
	"github.com/redactyl/spellcheck/internal/engine"
	"github.com/redactyl/spellcheck/internal/logging"
	"github.com/redactyl/spellcheck/internal/report"
)

var formats = map[string]bool{"codequality": true, "json": true, "text": true, "table": true, "sarif": true}

// settings is the fully resolved configuration of one check.
type settings struct {
	input       string
	dictionary  string
	exceptions  string
	locale      string
	dictDirs    []string
	format      string
	output      string
	humanReport string
	failOn      string
	noColor     bool
	limits      dictionary.Limits
}

// loadFileConfig merges global, repo-local and explicit config files, in
// increasing order of precedence.
func loadFileConfig(explicit string) (config.FileConfig, error) {
	var merged config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		merged = merged.Merge(c)
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			merged = merged.Merge(c)
		}
	}
	if explicit != "" {
		c, err := config.LoadFile(explicit)
		if err != nil {
			return merged, fmt.Errorf("load config %s: %w", explicit, err)
		}
		merged = merged.Merge(c)
	}
	return merged, nil
}

func resolve(cmd *cobra.Command, opts *options, args []string, fc config.FileConfig) (settings, error) {
	s := settings{input: args[0]}
	if len(args) > 1 {
		s.dictionary = pickString(args[1], fc.Dictionary)
	}
	if len(args) > 2 {
		s.exceptions = pickString(args[2], fc.Exceptions)
	} else {
		s.exceptions = pickString("", fc.Exceptions)
	}
	if s.exceptions == "" {
		return s, errors.New("missing exception file argument")
	}
	s.locale = pickString(opts.locale, fc.Locale)
	if s.locale == "" {
		s.locale = dictionary.DefaultLocale
	}
	s.dictDirs = opts.dictDirs
	if len(s.dictDirs) == 0 {
		s.dictDirs = fc.DictDirs
	}
	s.format = strings.ToLower(pickString(opts.format, fc.Format))
	if s.format == "" {
		s.format = "codequality"
	}
	if !formats[s.format] {
		return s, fmt.Errorf("unknown --format %q", s.format)
	}
	s.output = pickString(opts.output, fc.Output)
	s.humanReport = pickString(opts.humanReport, fc.HumanReport)
	s.failOn = strings.ToLower(pickString(opts.failOn, fc.FailOn))
	if err := report.ValidateFailOn(s.failOn); err != nil {
		return s, err
	}
	s.noColor = pickBool(opts.noColor, fc.NoColor) || !isTerminal(cmd.OutOrStdout())
	s.limits = dictionary.Limits{
		MaxArchiveBytes: pickInt64(0, fc.MaxArchiveBytes),
		MaxEntries:      pickInt(0, fc.MaxEntries),
	}
	return s, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runCheck(cmd *cobra.Command, opts *options, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) < 2 {
		fmt.Fprint(out, usageText)
		return &exitError{code: 1}
	}
	if len(args) > 3 {
		logging.Debug("ignoring extra arguments", "args", args[3:])
		args = args[:3]
	}

	fc, err := loadFileConfig(opts.configPath)
	if err != nil {
		return err
	}
	if fc.LogLevel != nil && !cmd.Flags().Changed("log-level") {
		if err := initLogging(cmd.ErrOrStderr(), *fc.LogLevel, opts.logFormat); err != nil {
			return err
		}
	}
	s, err := resolve(cmd, opts, args, fc)
	if err != nil {
		return err
	}

	res, err := engine.Run(cmd.Context(), engine.Config{
		InputPath:      s.input,
		DictionaryPath: s.dictionary,
		ExceptionsPath: s.exceptions,
		Locale:         s.locale,
		SearchDirs:     s.dictDirs,
		Limits:         s.limits,
	})
	switch {
	case errors.Is(err, engine.ErrDictionary):
		// a missing dictionary is a silent no-op
		logging.Debug("dictionary load failed", "err", err)
		return nil
	case errors.Is(err, engine.ErrInput):
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "Error: Input file '%s' not found\n", s.input)
		} else {
			fmt.Fprintf(out, "Error reading file: %v\n", err)
		}
		return nil
	case err != nil:
		return err
	}

	if err := emit(out, s, res); err != nil {
		return err
	}
	if s.output != "" {
		if err := report.SaveCodeQuality(s.output, res.Findings, s.input); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		logging.Info("code quality report written", "path", s.output)
	}
	if s.humanReport != "" {
		if err := report.SaveHumanReport(s.humanReport, res.Findings, s.input); err != nil {
			return fmt.Errorf("write human report: %w", err)
		}
		logging.Info("human-readable report written", "path", s.humanReport)
	}
	if report.ShouldFail(res.Findings, s.failOn) {
		return &exitError{code: 1}
	}
	return nil
}

func emit(out io.Writer, s settings, res engine.Result) error {
	popts := report.PrintOptions{NoColor: s.noColor, Duration: res.Duration, Tokens: res.Tokens}
	switch s.format {
	case "sarif":
		return report.WriteSARIF(out, res.Findings, s.input, version)
	case "text":
		report.PrintText(out, res.Findings, s.input, popts)
		return nil
	case "table":
		return report.PrintTable(out, res.Findings, s.input, popts)
	default:
		return report.WriteCodeQuality(out, res.Findings, s.input)
	}
}
