package main

import "github.com/redactyl/spellcheck/cmd/spellcheck"

func main() { spellcheck.Execute() }
