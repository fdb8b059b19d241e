package spellcheck

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	dir        string
	dict       string
	exceptions string
}

// newFixture writes a tiny Hunspell dictionary (knows "привет") and an empty
// exception list, and points the config lookup at empty directories.
func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dict := filepath.Join(dir, "dict")
	require.NoError(t, os.MkdirAll(dict, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dict, "ru_RU.aff"), []byte("SET UTF-8\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dict, "ru_RU.dic"), []byte("1\nпривет\n"), 0o644))
	exc := filepath.Join(dir, "exceptions.txt")
	require.NoError(t, os.WriteFile(exc, nil, 0o644))
	return fixture{dir: dir, dict: dict, exceptions: exc}
}

func (f fixture) input(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(f.dir, "input.txt")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func execute(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCLI_Scenario(t *testing.T) {
	f := newFixture(t)
	in := f.input(t, "Привет мир 123 hello")

	code, out, _ := execute(in, f.dict, f.exceptions)
	require.Equal(t, 0, code)

	var arr []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &arr), out)
	require.Len(t, arr, 1)
	assert.Equal(t, "major", arr[0]["severity"])
	assert.Equal(t, "spelling_error_мир_1_8_0", arr[0]["fingerprint"])
	loc := arr[0]["location"].(map[string]any)
	begin := loc["positions"].(map[string]any)["begin"].(map[string]any)
	assert.Equal(t, float64(1), begin["line"])
	assert.Equal(t, float64(8), begin["column"])
	assert.Contains(t, out, "'мир'")
}

func TestCLI_ExtraArgumentsIgnored(t *testing.T) {
	f := newFixture(t)
	code, out, _ := execute(f.input(t, "мир"), f.dict, f.exceptions, "extra", "more")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "spelling_error_мир_1_1_0")
}

func TestCLI_ExceptionsAreInfo(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(f.exceptions, []byte("ТестовыйСлово\n"), 0o644))
	in := f.input(t, "тестовыйслово другое")

	code, out, _ := execute(in, f.dict, f.exceptions)
	require.Equal(t, 0, code)
	var arr []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &arr))
	require.Len(t, arr, 2)
	assert.Equal(t, "info", arr[0]["severity"])
	assert.Equal(t, "major", arr[1]["severity"])
}

func TestCLI_EmptyInputPrintsNothing(t *testing.T) {
	f := newFixture(t)
	code, out, _ := execute(f.input(t, ""), f.dict, f.exceptions)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestCLI_Usage(t *testing.T) {
	code, out, _ := execute("only-one.txt")
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(out, "Usage: spellcheck"), out)

	code, out, _ = execute()
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Usage:")
}

func TestCLI_MissingExceptionArgument(t *testing.T) {
	f := newFixture(t)
	code, out, errOut := execute(f.input(t, "мир"), f.dict)
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "missing exception file")
}

func TestCLI_ExceptionsFromConfig(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, ".spellcheck.yml"), []byte("exceptions: "+f.exceptions+"\n"), 0o644))
	code, out, _ := execute(f.input(t, "мир"), f.dict)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "мир")
}

func TestCLI_DictionaryFailureIsSilent(t *testing.T) {
	f := newFixture(t)
	in := f.input(t, "мир")

	code, out, errOut := execute(in, filepath.Join(f.dir, "missing.zip"), f.exceptions)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
	assert.Empty(t, errOut)

	// system lookup for a locale that is not installed
	code, out, _ = execute(in, "", f.exceptions, "--locale", "xx_XX", "--dict-dir", f.dir)
	assert.Equal(t, 0, code)
	assert.Empty(t, out)
}

func TestCLI_SystemDictionary(t *testing.T) {
	f := newFixture(t)
	code, out, _ := execute(f.input(t, "привет мир"), "", f.exceptions, "--dict-dir", f.dict)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "spelling_error_мир_1_8_0")
	assert.NotContains(t, out, "привет")
}

func TestCLI_InputErrors(t *testing.T) {
	f := newFixture(t)
	missing := filepath.Join(f.dir, "nope.txt")
	code, out, _ := execute(missing, f.dict, f.exceptions)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Error: Input file '"+missing+"' not found\n", out)

	code, out, _ = execute(f.dir, f.dict, f.exceptions)
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Error reading file: "), out)

	code, out, _ = execute(f.input(t, "мир\xff\n"), f.dict, f.exceptions)
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Error reading file: "), out)
	assert.NotContains(t, out, `"type"`)
}

func TestCLI_MissingExceptionFile(t *testing.T) {
	f := newFixture(t)
	code, out, errOut := execute(f.input(t, "мир"), f.dict, filepath.Join(f.dir, "nope.txt"))
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "error:")
}

func TestCLI_FailOn(t *testing.T) {
	f := newFixture(t)
	in := f.input(t, "мир")
	code, _, _ := execute(in, f.dict, f.exceptions, "--fail-on", "major")
	assert.Equal(t, 1, code)

	code, _, _ = execute(f.input(t, "привет"), f.dict, f.exceptions, "--fail-on", "info")
	assert.Equal(t, 0, code)

	code, _, errOut := execute(in, f.dict, f.exceptions, "--fail-on", "blocker")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "fail-on")
}

func TestCLI_Formats(t *testing.T) {
	f := newFixture(t)
	in := f.input(t, "мир")

	code, out, _ := execute(in, f.dict, f.exceptions, "--format", "sarif")
	require.Equal(t, 0, code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "2.1.0", doc["version"])

	code, out, _ = execute(in, f.dict, f.exceptions, "--format", "text", "--no-color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Findings: 1")

	code, out, _ = execute(in, f.dict, f.exceptions, "--format", "table", "--no-color")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "input.txt:1:1")
	assert.Contains(t, out, "Words checked: 1")

	code, _, errOut := execute(in, f.dict, f.exceptions, "--format", "xml")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown --format")
}

func TestCLI_ReportFiles(t *testing.T) {
	f := newFixture(t)
	in := f.input(t, "мир")
	jsonOut := filepath.Join(f.dir, "gl-spelling-report.json")
	textOut := filepath.Join(f.dir, "spelling_report.txt")

	code, _, _ := execute(in, f.dict, f.exceptions, "--output", jsonOut, "--human-report", textOut)
	require.Equal(t, 0, code)

	b, err := os.ReadFile(jsonOut)
	require.NoError(t, err)
	assert.Contains(t, string(b), "spelling_error_мир_1_1_0")

	b, err = os.ReadFile(textOut)
	require.NoError(t, err)
	assert.Contains(t, string(b), "- 'мир' at line 1, column 1")
}

func TestCLI_Version(t *testing.T) {
	code, out, _ := execute("version")
	assert.Equal(t, 0, code)
	assert.Equal(t, "spellcheck "+version+"\n", out)
}

func TestCLI_CIInit(t *testing.T) {
	dir := t.TempDir()
	code, out, _ := execute("ci", "init", "--provider", "gitlab", "--dir", dir, "--input", "docs/text.md")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Wrote")
	b, err := os.ReadFile(filepath.Join(dir, ".gitlab-ci.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "codequality: gl-code-quality-report.json")
	assert.Contains(t, string(b), "spellcheck docs/text.md")

	for _, provider := range []string{"gitlab", "github", "bitbucket"} {
		rel, content, err := ciTemplate(provider, "README.md", "exceptions.txt")
		require.NoError(t, err, provider)
		assert.NotEmpty(t, rel, provider)
		assert.Contains(t, content, "apt-get install -y hunspell-ru", provider)
		assert.Contains(t, content, "spellcheck README.md \"\" exceptions.txt", provider)
	}

	code, _, errOut := execute("ci", "init", "--provider", "jenkins", "--dir", dir)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown --provider")
}

func TestCLI_ConfigInitAndShow(t *testing.T) {
	f := newFixture(t)
	code, _, _ := execute("config", "init", "--fail-on", "major")
	require.Equal(t, 0, code)

	code, out, _ := execute("config", "show")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "locale: ru_RU")
	assert.Contains(t, out, "fail_on: major")

	extra := filepath.Join(f.dir, "extra.yml")
	require.NoError(t, os.WriteFile(extra, []byte("locale: uk_UA\n"), 0o644))
	code, out, _ = execute("config", "show", "--config", extra)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "locale: uk_UA")
}

func TestPickHelpers(t *testing.T) {
	assert.Equal(t, "cli", pickString("cli", strPtr("cfg")))
	assert.Equal(t, "cfg", pickString("", nil, strPtr(""), strPtr("cfg")))
	assert.Equal(t, 7, pickInt(0, nil, func() *int { v := 7; return &v }()))
	assert.Equal(t, int64(0), pickInt64(0))
	assert.True(t, pickBool(false, boolPtr(true)))
	assert.False(t, pickBool(false, boolPtr(false), boolPtr(true)))
}
