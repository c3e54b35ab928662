package namefile

import (
	"os"
	"path/filepath"

	"github.com/customeros/namesherpa/internal/util"
)

const defaultFileMode os.FileMode = 0644

// Save writes nf to path in full. The content goes to a temporary sibling
// first and is renamed over path, so readers never observe a partial file.
func Save(path string, nf *NameFile) error {
	data, err := Marshal(nf)
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return writeFile(path, data)
}

// writeFile replaces path with data. An existing file keeps its permissions.
func writeFile(path string, data []byte) error {
	mode, preserve := defaultFileMode, false
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		mode, preserve = info.Mode().Perm(), true
	}

	tmpName, err := util.GenerateTempFileName()
	if err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	tmp := filepath.Join(filepath.Dir(path), tmpName)

	if err := os.WriteFile(tmp, data, mode); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	// WriteFile applies the umask; a replaced file keeps its exact mode.
	if preserve {
		if err := os.Chmod(tmp, mode); err != nil {
			os.Remove(tmp)
			return &IOError{Op: "write", Path: path, Err: err}
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}
