// Package datasets turns the embedded literal name lists into name files.
package datasets

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/norm"

	"github.com/customeros/namesherpa/internal/logging"
	"github.com/customeros/namesherpa/internal/names"
	"github.com/customeros/namesherpa/internal/syntax"
	"github.com/customeros/namesherpa/namefile"
)

// Build assembles one name file per gender of seed.
func Build(seed *Seed) []*namefile.NameFile {
	sharedLast := append([]string{}, seed.LastNames...)
	given := make([][]string, len(seed.Genders))
	for i, g := range seed.Genders {
		for _, full := range g.FullNames {
			surname, first, ok := splitFullName(full)
			if !ok {
				continue
			}
			given[i] = append(given[i], first)
			sharedLast = append(sharedLast, surname)
		}
	}

	files := make([]*namefile.NameFile, 0, len(seed.Genders))
	for i, g := range seed.Genders {
		first := append(append([]string{}, g.FirstNames...), given[i]...)
		last := sharedLast
		if len(g.LastNames) > 0 {
			last = g.LastNames
		}
		files = append(files, &namefile.NameFile{
			Region:     seed.Region,
			Gender:     g.Name,
			FirstNames: seed.arrange(first),
			LastNames:  seed.arrange(last),
		})
	}
	return files
}

func (s *Seed) arrange(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, norm.NFC.String(v))
	}

	switch {
	case s.Sort && s.Unique:
		slices.Sort(out)
		out = slices.Compact(out)
	case s.Sort:
		slices.Sort(out)
	case s.Unique:
		out = names.Unique(out)
	}
	return out
}

// Write saves files into dir as <region>_<gender><ext>, creating dir when
// needed. It returns the written paths.
func Write(dir, ext string, files []*namefile.NameFile, log *logging.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", dir)
	}

	written := make([]string, 0, len(files))
	for _, nf := range files {
		name := syntax.FileName(nf.Region, nf.Gender, ext)
		path := filepath.Join(dir, name)
		if err := namefile.Save(path, nf); err != nil {
			return written, err
		}
		written = append(written, path)
		log.OK("Generated %s with %d first names and %d last names", name, len(nf.FirstNames), len(nf.LastNames))
	}
	return written, nil
}

// Generate builds every embedded seed and writes the result into dir.
func Generate(dir, ext string, log *logging.Logger) ([]string, error) {
	seeds, err := LoadSeeds()
	if err != nil {
		return nil, err
	}

	var files []*namefile.NameFile
	for _, seed := range seeds {
		files = append(files, Build(seed)...)
	}
	return Write(dir, ext, files, log)
}
