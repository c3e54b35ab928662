package syntax

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	DefaultExtension    = ".json"
	DefaultBackupSuffix = "_backup"
)

// FileName builds the conventional <region>_<gender><ext> file name.
func FileName(region, gender, ext string) string {
	return fmt.Sprintf("%s_%s%s", region, gender, ext)
}

// ParseFileName splits a <region>_<gender><ext> file name. The gender is
// taken after the last underscore so regions may contain underscores
// themselves (north_african_male.json).
func ParseFileName(name, ext string) (region, gender string, ok bool) {
	base := filepath.Base(name)
	if !HasExtension(base, ext) {
		return "", "", false
	}
	stem := strings.TrimSuffix(base, ext)

	idx := strings.LastIndex(stem, "_")
	if idx <= 0 || idx == len(stem)-1 {
		return "", "", false
	}
	return stem[:idx], stem[idx+1:], true
}

func HasExtension(name, ext string) bool {
	return strings.HasSuffix(name, ext) && len(name) > len(ext)
}

// BackupPath derives the sibling backup path for a name file by replacing its
// trailing extension with suffix+ext. Paths without the extension get the
// suffixed extension appended.
func BackupPath(path, suffix, ext string) string {
	if HasExtension(path, ext) {
		return strings.TrimSuffix(path, ext) + suffix + ext
	}
	return path + suffix + ext
}

// IsBackup reports whether name was produced by BackupPath.
func IsBackup(name, suffix, ext string) bool {
	if suffix == "" {
		return false
	}
	return strings.HasSuffix(filepath.Base(name), suffix+ext)
}
