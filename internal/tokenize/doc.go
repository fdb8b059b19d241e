// Package tokenize extracts candidate Cyrillic words from text together with
// their line, column and global rune offsets.
package tokenize
