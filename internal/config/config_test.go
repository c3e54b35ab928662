package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, ".json", cfg.Extension)
	assert.Equal(t, "_backup", cfg.BackupSuffix)
	assert.True(t, cfg.Backup)
	assert.Equal(t, ColorAuto, cfg.Color)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "namesherpa.toml")
	content := `
names_dir = "data/names"
backup = false
color = "never"
unexpected = 1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := DefaultConfig()
	unknown, err := LoadFile(path, cfg)
	require.NoError(t, err)

	assert.Equal(t, "data/names", cfg.NamesDir)
	assert.False(t, cfg.Backup)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "_backup", cfg.BackupSuffix, "absent keys keep their defaults")
	assert.Equal(t, []string{"unexpected"}, unknown)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.toml"), DefaultConfig())
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte(`names_dir = [`), 0644))
	_, err = LoadFile(bad, DefaultConfig())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Defaults", func(c *Config) {}, false},
		{"Empty names dir", func(c *Config) { c.NamesDir = " " }, true},
		{"Extension without dot", func(c *Config) { c.Extension = "json" }, true},
		{"Bare dot extension", func(c *Config) { c.Extension = "." }, true},
		{"Empty suffix with backups", func(c *Config) { c.BackupSuffix = "" }, true},
		{"Empty suffix without backups", func(c *Config) { c.BackupSuffix = ""; c.Backup = false }, false},
		{"Suffix with separator", func(c *Config) { c.BackupSuffix = "/bak" }, true},
		{"Unknown color", func(c *Config) { c.Color = "sometimes" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
