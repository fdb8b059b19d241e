package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/redactyl/spellcheck/internal/dictionary"
	"github.com/redactyl/spellcheck/internal/exceptions"
	"github.com/redactyl/spellcheck/internal/logging"
	"github.com/redactyl/spellcheck/internal/report"
	"github.com/redactyl/spellcheck/internal/tokenize"
	"github.com/redactyl/spellcheck/internal/types"
)

var (
	// ErrDictionary wraps any failure to load the spelling dictionary.
	ErrDictionary = errors.New("dictionary unavailable")
	// ErrExceptions wraps any failure to read the exception list.
	ErrExceptions = errors.New("exception list unavailable")
	// ErrInput wraps any failure to read the file being checked.
	ErrInput = errors.New("input unavailable")
)

// Config describes one spelling check.
type Config struct {
	InputPath      string
	DictionaryPath string // archive or directory; empty selects the system dictionary
	ExceptionsPath string
	Locale         string
	SearchDirs     []string
	Limits         dictionary.Limits

	// Preloaded inputs take precedence over the paths above.
	Dictionary dictionary.Dictionary
	Exceptions exceptions.Set
}

// Result is the outcome of a check.
type Result struct {
	Path     string
	Tokens   int
	Findings []types.Finding
	Duration time.Duration
}

// LoadDictionary resolves the dictionary for cfg: a preloaded one, the
// archive at DictionaryPath, or the system dictionary for Locale.
func LoadDictionary(cfg Config) (dictionary.Dictionary, error) {
	if cfg.Dictionary != nil {
		return cfg.Dictionary, nil
	}
	var (
		h   *dictionary.Hunspell
		err error
	)
	if cfg.DictionaryPath != "" {
		h, err = dictionary.FromArchive(cfg.DictionaryPath, cfg.Limits)
	} else {
		h, err = dictionary.FromSystem(cfg.Locale, cfg.SearchDirs)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDictionary, err)
	}
	logging.Debug("dictionary loaded", "stems", h.Len(), "archive", cfg.DictionaryPath, "locale", cfg.Locale)
	return h, nil
}

// Check returns the tokens the dictionary does not know, in input order.
func Check(dict dictionary.Dictionary, tokens []types.Token) []types.Token {
	var misses []types.Token
	for _, tok := range tokens {
		if !dict.Lookup(tok.Word) {
			misses = append(misses, tok)
		}
	}
	return misses
}

// Run executes the pipeline. Stages run in a fixed order (dictionary,
// exception list, input) and the first failure aborts the run.
func Run(ctx context.Context, cfg Config) (Result, error) {
	started := time.Now()
	res := Result{Path: cfg.InputPath}

	dict, err := LoadDictionary(cfg)
	if err != nil {
		return res, err
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	exc := cfg.Exceptions
	if exc == nil {
		exc, err = exceptions.Load(cfg.ExceptionsPath)
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrExceptions, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return res, err
	}

	text, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrInput, err)
	}
	if !utf8.Valid(text) {
		return res, fmt.Errorf("%w: %s is not valid UTF-8", ErrInput, cfg.InputPath)
	}

	res.Findings, res.Tokens = CheckText(dict, exc, string(text))
	res.Duration = time.Since(started)
	logging.Debug("check finished", "path", cfg.InputPath, "tokens", res.Tokens, "findings", len(res.Findings), "duration", res.Duration)
	return res, nil
}

// CheckText runs tokenization, lookup and classification on text and
// returns the findings together with the number of tokens examined.
func CheckText(dict dictionary.Dictionary, exc exceptions.Set, text string) ([]types.Finding, int) {
	tokens := tokenize.Words(text)
	return report.Classify(Check(dict, tokens), exc), len(tokens)
}
