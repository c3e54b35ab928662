package cli

import (
	"os"

	"github.com/customeros/namesherpa/bulkcurate"
	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/internal/logging"
)

// BuildLogger returns the report logger for cfg. With JSON output the report
// moves to stderr so stdout carries only the JSON document.
func BuildLogger(cfg *config.Config) *logging.Logger {
	if cfg.JSON {
		return logging.New(os.Stderr, os.Stderr, cfg.Color)
	}
	return logging.New(stdout, os.Stderr, cfg.Color)
}

func BuildOptions(cfg *config.Config) bulkcurate.Options {
	opts := bulkcurate.Options{
		Extension:    cfg.Extension,
		Backup:       cfg.Backup,
		BackupSuffix: cfg.BackupSuffix,
		Log:          BuildLogger(cfg),
	}
	if cfg.Progress {
		opts.Progress = os.Stderr
	}
	return opts
}

// ResolveDir picks the directory argument at index i of args, falling back to
// the configured names directory.
func ResolveDir(args []string, i int, cfg *config.Config) string {
	if len(args) > i && args[i] != "" {
		return args[i]
	}
	return cfg.NamesDir
}
