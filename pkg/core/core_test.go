package core

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Smoke(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "doc.txt")
	exc := filepath.Join(dir, "exceptions.txt")
	require.NoError(t, os.WriteFile(in, []byte("привет мир\nкубернетес"), 0o644))
	require.NoError(t, os.WriteFile(exc, []byte("Кубернетес\n"), 0o644))

	res, err := Check(context.Background(), Config{
		InputPath:      in,
		ExceptionsPath: exc,
		Dictionary:     NewWordList("привет"),
	})
	require.NoError(t, err)
	require.Len(t, res.Findings, 2)
	assert.Equal(t, 3, res.Tokens)
	assert.Equal(t, "major", string(res.Findings[0].Severity))
	assert.Equal(t, "info", string(res.Findings[1].Severity))
}

func TestCheck_MissingDictionary(t *testing.T) {
	_, err := Check(context.Background(), Config{
		InputPath:      "doc.txt",
		ExceptionsPath: "exceptions.txt",
		DictionaryPath: filepath.Join(t.TempDir(), "missing.zip"),
	})
	assert.ErrorIs(t, err, ErrDictionary)
}

func TestWriteCodeQuality_RoundTrip(t *testing.T) {
	findings, n := CheckText(NewWordList("привет"), NewExceptions(), "привет мир")
	require.Equal(t, 2, n)

	var buf bytes.Buffer
	require.NoError(t, WriteCodeQuality(&buf, findings, "doc.txt"))
	issues, err := UnmarshalIssues(&buf)
	require.NoError(t, err)
	assert.Equal(t, Issues(findings, "doc.txt"), issues)
}
