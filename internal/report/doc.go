// Package report classifies spelling misses and renders them as a GitLab
// Code Quality issue array, SARIF, a plain-text report, or a table.
package report
