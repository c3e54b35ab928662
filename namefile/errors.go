package namefile

import (
	"fmt"
	"strings"
)

// ParseError reports content that is not well-formed JSON.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// StructuralError reports a document that parsed but lacks the required
// name lists, or holds them with the wrong type.
type StructuralError struct {
	Path    string
	Missing []string
	Err     error
}

func (e *StructuralError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("invalid structure in %s: missing %s", e.Path, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid structure in %s: %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// IOError reports a failed read or write against the file system.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
