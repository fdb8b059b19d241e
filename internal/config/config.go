package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for spellcheck.
type FileConfig struct {
	Dictionary  *string  `yaml:"dictionary,omitempty"`
	Exceptions  *string  `yaml:"exceptions,omitempty"`
	Locale      *string  `yaml:"locale,omitempty"`
	DictDirs    []string `yaml:"dict_dirs,omitempty"`
	Format      *string  `yaml:"format,omitempty"`
	FailOn      *string  `yaml:"fail_on,omitempty"`
	Output      *string  `yaml:"output,omitempty"`
	HumanReport *string  `yaml:"human_report,omitempty"`
	NoColor     *bool    `yaml:"no_color,omitempty"`
	LogLevel    *string  `yaml:"log_level,omitempty"`

	// Archive reading limits for packaged dictionaries
	MaxArchiveBytes *int64 `yaml:"max_archive_bytes,omitempty"`
	MaxEntries      *int   `yaml:"max_entries,omitempty"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
// It supports .spellcheck.yml/.yaml and spellcheck.yml/.yaml.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".spellcheck.yml", ".spellcheck.yaml", "spellcheck.yml", "spellcheck.yaml"} {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "spellcheck", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Merge overlays o on top of fc: every field set in o wins.
func (fc FileConfig) Merge(o FileConfig) FileConfig {
	out := fc
	if o.Dictionary != nil {
		out.Dictionary = o.Dictionary
	}
	if o.Exceptions != nil {
		out.Exceptions = o.Exceptions
	}
	if o.Locale != nil {
		out.Locale = o.Locale
	}
	if len(o.DictDirs) > 0 {
		out.DictDirs = o.DictDirs
	}
	if o.Format != nil {
		out.Format = o.Format
	}
	if o.FailOn != nil {
		out.FailOn = o.FailOn
	}
	if o.Output != nil {
		out.Output = o.Output
	}
	if o.HumanReport != nil {
		out.HumanReport = o.HumanReport
	}
	if o.NoColor != nil {
		out.NoColor = o.NoColor
	}
	if o.LogLevel != nil {
		out.LogLevel = o.LogLevel
	}
	if o.MaxArchiveBytes != nil {
		out.MaxArchiveBytes = o.MaxArchiveBytes
	}
	if o.MaxEntries != nil {
		out.MaxEntries = o.MaxEntries
	}
	return out
}

// Marshal renders the configuration as YAML.
func (fc FileConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(fc)
}
