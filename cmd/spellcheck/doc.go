// Package spellcheck provides the command-line interface for the spellcheck
// tool. The root command checks one file; subcommands print the version,
// show the effective configuration and write CI pipeline templates.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/spellcheck/cmd/spellcheck"
//	func main() { spellcheck.Execute() }
package spellcheck
