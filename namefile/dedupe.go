package namefile

import (
	"os"

	"github.com/customeros/namesherpa/internal/names"
	"github.com/customeros/namesherpa/internal/syntax"
)

type FieldChange struct {
	Before int `json:"before"`
	After  int `json:"after"`
}

func (c FieldChange) Removed() int {
	return c.Before - c.After
}

type DedupeResult struct {
	Path       string      `json:"path,omitempty"`
	FirstNames FieldChange `json:"firstNames"`
	LastNames  FieldChange `json:"lastNames"`
	BackupPath string      `json:"backupPath,omitempty"`
	// BackupErr is set when the backup could not be written. The cleaned
	// file is still saved in that case.
	BackupErr error `json:"-"`
}

func (r *DedupeResult) TotalRemoved() int {
	return r.FirstNames.Removed() + r.LastNames.Removed()
}

type DedupeOptions struct {
	Backup       bool
	BackupSuffix string
	Extension    string
}

func DefaultDedupeOptions() DedupeOptions {
	return DedupeOptions{
		Backup:       true,
		BackupSuffix: syntax.DefaultBackupSuffix,
		Extension:    syntax.DefaultExtension,
	}
}

// Dedupe returns a copy of nf where each name list keeps only the first
// occurrence of every value. Lists are reduced independently.
func Dedupe(nf *NameFile) (*NameFile, *DedupeResult) {
	out := &NameFile{
		Region:     nf.Region,
		Gender:     nf.Gender,
		FirstNames: names.Unique(nf.FirstNames),
		LastNames:  names.Unique(nf.LastNames),
	}
	result := &DedupeResult{
		FirstNames: FieldChange{Before: len(nf.FirstNames), After: len(out.FirstNames)},
		LastNames:  FieldChange{Before: len(nf.LastNames), After: len(out.LastNames)},
	}
	return out, result
}

// DedupeFile loads the name file at path, optionally copies its original
// bytes to a backup sibling, and rewrites path with duplicates removed.
func DedupeFile(path string, opts DedupeOptions) (*DedupeResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	nf, err := Parse(data, path)
	if err != nil {
		return nil, err
	}

	cleaned, result := Dedupe(nf)
	result.Path = path

	if opts.Backup {
		backupPath := syntax.BackupPath(path, opts.BackupSuffix, opts.Extension)
		if err := writeFile(backupPath, data); err != nil {
			result.BackupErr = err
		} else {
			result.BackupPath = backupPath
		}
	}

	if err := Save(path, cleaned); err != nil {
		return result, err
	}
	return result, nil
}
