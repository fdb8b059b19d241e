package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return p
}

func TestLoadFile_Basic(t *testing.T) {
	dir := t.TempDir()
	p := writeTemp(t, dir, "spellcheck.yaml", "locale: uk_UA\nfail_on: major\ndict_dirs: [/opt/dicts, /srv/hunspell]\nmax_entries: 50\nno_color: true\n")
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Locale == nil || *cfg.Locale != "uk_UA" {
		t.Fatalf("expected locale=uk_UA, got %#v", cfg.Locale)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "major" {
		t.Fatalf("expected fail_on=major, got %#v", cfg.FailOn)
	}
	if cfg.MaxEntries == nil || *cfg.MaxEntries != 50 {
		t.Fatalf("expected max_entries=50, got %#v", cfg.MaxEntries)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("expected no_color=true")
	}
	assert.Equal(t, []string{"/opt/dicts", "/srv/hunspell"}, cfg.DictDirs)
}

func TestLoadFile_Invalid(t *testing.T) {
	p := writeTemp(t, t.TempDir(), "bad.yml", "locale: [unterminated\n")
	_, err := LoadFile(p)
	assert.Error(t, err)
}

func TestLoadLocal_PrefersDotfile(t *testing.T) {
	dir := t.TempDir()
	// place both, expect the dotfile to be picked first by search order
	writeTemp(t, dir, "spellcheck.yaml", "locale: en_US\n")
	writeTemp(t, dir, ".spellcheck.yaml", "locale: ru_RU\n")
	cfg, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Locale == nil || *cfg.Locale != "ru_RU" {
		t.Fatalf("expected locale=ru_RU from .spellcheck.yaml, got %#v", cfg.Locale)
	}
}

func TestLoadLocal_NoConfig(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadLocal(dir); err == nil {
		t.Fatal("expected error when no local config exists")
	}
}

func TestLoadGlobal_XDG_Config(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "spellcheck")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeTemp(t, cfgDir, "config.yml", "format: sarif\n")
	t.Setenv("XDG_CONFIG_HOME", dir)
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatalf("LoadGlobal: %v", err)
	}
	if cfg.Format == nil || *cfg.Format != "sarif" {
		t.Fatalf("expected format=sarif from global config, got %#v", cfg.Format)
	}
}

func TestLoadGlobal_NoConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	// Simulate no HOME as well by clearing HOME; LoadGlobal should error
	t.Setenv("HOME", "")
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config dir exists")
	}
}

func TestMerge(t *testing.T) {
	ru, uk, major := "ru_RU", "uk_UA", "major"
	global := FileConfig{Locale: &ru, DictDirs: []string{"/a"}}
	local := FileConfig{Locale: &uk, FailOn: &major}

	got := global.Merge(local)
	require.NotNil(t, got.Locale)
	assert.Equal(t, "uk_UA", *got.Locale)
	assert.Equal(t, []string{"/a"}, got.DictDirs)
	require.NotNil(t, got.FailOn)
	assert.Equal(t, "major", *got.FailOn)
	assert.Nil(t, got.Format)

	b, err := got.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(b), "locale: uk_UA")
	assert.NotContains(t, string(b), "format")
}
