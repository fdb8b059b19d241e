// Package engine runs the spelling pipeline for one file: load the
// dictionary and exception list, tokenize the text, look every token up and
// classify the misses. This package is internal; external consumers should
// use the stable facade in pkg/core.
package engine
