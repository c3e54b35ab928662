// Package config holds runtime settings: defaults, the optional TOML config
// file and validation. Command line flags are applied on top by main.
package config

import (
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/customeros/namesherpa/internal/syntax"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when the output is a terminal (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // No colors.
)

const DefaultNamesDir = "assets/data/names"

type Config struct {
	NamesDir     string    `toml:"names_dir"`
	Extension    string    `toml:"extension"`
	Backup       bool      `toml:"backup"`
	BackupSuffix string    `toml:"backup_suffix"`
	Color        ColorMode `toml:"color"`
	Progress     bool      `toml:"progress"`
	JSON         bool      `toml:"json"`
}

func DefaultConfig() *Config {
	return &Config{
		NamesDir:     DefaultNamesDir,
		Extension:    syntax.DefaultExtension,
		Backup:       true,
		BackupSuffix: syntax.DefaultBackupSuffix,
		Color:        ColorAuto,
	}
}

// LoadFile decodes the TOML file at path over cfg. Keys present in the file
// override the current values, absent keys are left alone. The returned
// slice lists keys the file set that Config does not know.
func LoadFile(path string, cfg *Config) ([]string, error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode config %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	return unknown, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.NamesDir) == "" {
		return errors.New("names_dir must not be empty")
	}
	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return errors.Errorf("extension must start with a dot, got %q", c.Extension)
	}
	if c.Backup && c.BackupSuffix == "" {
		return errors.New("backup_suffix must not be empty when backups are enabled")
	}
	if strings.ContainsAny(c.BackupSuffix, `/\`) {
		return errors.Errorf("backup_suffix must not contain path separators, got %q", c.BackupSuffix)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Errorf("color must be one of auto, always, never, got %q", c.Color)
	}
	return nil
}
