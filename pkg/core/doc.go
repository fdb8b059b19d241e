// Package core provides a small, stable facade over the spellcheck pipeline
// for programs that embed it. It re-exports a narrow API surface so callers
// can depend on a stable import path without reaching into internal packages.
//
// Example:
//
//	res, err := core.Check(ctx, core.Config{
//		InputPath:      "README.md",
//		ExceptionsPath: "exceptions.txt",
//	})
//	if err != nil { /* handle */ }
//	_ = core.WriteCodeQuality(os.Stdout, res.Findings, res.Path)
package core
