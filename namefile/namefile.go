// Package namefile reads, analyzes and deduplicates region/gender name
// datasets stored as JSON documents.
package namefile

import (
	"bytes"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

const (
	FieldFirstNames = "firstNames"
	FieldLastNames  = "lastNames"

	unknown = "unknown"
)

// NameFile is a region and gender scoped list of first and last names.
// Order of both lists is significant: it decides which entry survives
// deduplication.
type NameFile struct {
	Region     string   `json:"region"`
	Gender     string   `json:"gender"`
	FirstNames []string `json:"firstNames"`
	LastNames  []string `json:"lastNames"`
}

// Label returns region_gender, using "unknown" for blank parts.
func (nf *NameFile) Label() string {
	return orUnknown(nf.Region) + "_" + orUnknown(nf.Gender)
}

// Clone returns a deep copy of nf. Both lists of the copy are non-nil.
func (nf *NameFile) Clone() *NameFile {
	return &NameFile{
		Region:     nf.Region,
		Gender:     nf.Gender,
		FirstNames: append([]string{}, nf.FirstNames...),
		LastNames:  append([]string{}, nf.LastNames...),
	}
}

// Load reads and parses the name file at path.
func Load(path string) (*NameFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return Parse(data, path)
}

// Parse decodes data as a name file. path is only used for error reporting.
func Parse(data []byte, path string) (*NameFile, error) {
	if !json.Valid(data) {
		var v interface{}
		err := json.Unmarshal(data, &v)
		if err == nil {
			err = errors.New("invalid JSON")
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &StructuralError{Path: path, Err: errors.Wrap(err, "document is not an object")}
	}

	nf := &NameFile{}
	var missing []string
	lists := []struct {
		key string
		dst *[]string
	}{
		{FieldFirstNames, &nf.FirstNames},
		{FieldLastNames, &nf.LastNames},
	}
	for _, list := range lists {
		raw, ok := fields[list.key]
		if !ok || isNull(raw) {
			missing = append(missing, list.key)
			continue
		}
		if err := json.Unmarshal(raw, list.dst); err != nil {
			return nil, &StructuralError{Path: path, Err: errors.Wrapf(err, "%s must be a list of strings", list.key)}
		}
		if *list.dst == nil {
			*list.dst = []string{}
		}
	}
	if len(missing) > 0 {
		return nil, &StructuralError{Path: path, Missing: missing}
	}

	for key, dst := range map[string]*string{"region": &nf.Region, "gender": &nf.Gender} {
		raw, ok := fields[key]
		if !ok || isNull(raw) {
			continue
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, &StructuralError{Path: path, Err: errors.Wrapf(err, "%s must be a string", key)}
		}
	}
	return nf, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Marshal encodes nf with two-space indentation. Non-ASCII and HTML
// characters are written as-is.
func Marshal(nf *NameFile) ([]byte, error) {
	// nil lists must encode as [] rather than null
	out := nf.Clone()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, errors.Wrap(err, "failed to encode name file")
	}
	return buf.Bytes(), nil
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}
