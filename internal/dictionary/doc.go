// Package dictionary loads Hunspell spelling dictionaries and answers word
// membership queries. Dictionaries come either from a packaged archive
// (zip/oxt, tar, tar.gz, tar.xz or a plain directory) or from the system
// Hunspell search path for a fixed locale.
package dictionary
