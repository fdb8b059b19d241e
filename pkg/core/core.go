package core

import (
	"context"

	"github.com/redactyl/spellcheck/internal/dictionary"
	"github.com/redactyl/spellcheck/internal/engine"
	"github.com/redactyl/spellcheck/internal/exceptions"
	"github.com/redactyl/spellcheck/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type Config = engine.Config
type Result = engine.Result
type Finding = types.Finding
type Issue = types.Issue
type Dictionary = dictionary.Dictionary
type Exceptions = exceptions.Set

var (
	ErrDictionary = engine.ErrDictionary
	ErrExceptions = engine.ErrExceptions
	ErrInput      = engine.ErrInput
)

// Check runs the full pipeline described by cfg.
func Check(ctx context.Context, cfg Config) (Result, error) {
	return engine.Run(ctx, cfg)
}

// CheckText checks text that is already in memory. It returns the findings
// and the number of words examined.
func CheckText(dict Dictionary, exc Exceptions, text string) ([]Finding, int) {
	return engine.CheckText(dict, exc, text)
}

// NewWordList builds an in-memory dictionary from words.
func NewWordList(words ...string) Dictionary { return dictionary.NewWordList(words...) }

// NewExceptions builds an exception set from words.
func NewExceptions(words ...string) Exceptions { return exceptions.New(words...) }
