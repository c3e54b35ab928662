package datasets

import (
	"embed"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed seed/*.toml
var seedFiles embed.FS

// Seed is the literal name data of one region.
type Seed struct {
	Region string `toml:"region"`
	// Sort orders every list by code point.
	Sort bool `toml:"sort"`
	// Unique drops repeated entries, keeping the first one.
	Unique    bool         `toml:"unique"`
	LastNames []string     `toml:"last_names"`
	Genders   []GenderSeed `toml:"gender"`
}

type GenderSeed struct {
	Name       string   `toml:"name"`
	FirstNames []string `toml:"first_names"`
	// FullNames holds "Surname Given" pairs. Given names feed this gender's
	// first names, surnames the region-wide last names.
	FullNames []string `toml:"full_names"`
	// LastNames replaces the region-wide last names for this gender.
	LastNames []string `toml:"last_names"`
}

// LoadSeeds decodes every embedded seed file, in file name order.
func LoadSeeds() ([]*Seed, error) {
	entries, err := seedFiles.ReadDir("seed")
	if err != nil {
		return nil, err
	}

	var seeds []*Seed
	for _, entry := range entries {
		name := path.Join("seed", entry.Name())
		data, err := seedFiles.ReadFile(name)
		if err != nil {
			return nil, err
		}
		seed, err := DecodeSeed(data, name)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

// DecodeSeed parses one TOML seed document. source names it in errors.
func DecodeSeed(data []byte, source string) (*Seed, error) {
	var seed Seed
	md, err := toml.Decode(string(data), &seed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode TOML %s", source)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("%s: unknown key %s", source, undecoded[0])
	}
	if err := seed.validate(); err != nil {
		return nil, errors.Wrap(err, source)
	}
	return &seed, nil
}

func (s *Seed) validate() error {
	if strings.TrimSpace(s.Region) == "" {
		return errors.New("region is required")
	}
	if len(s.Genders) == 0 {
		return errors.New("at least one gender is required")
	}
	for _, g := range s.Genders {
		if strings.TrimSpace(g.Name) == "" {
			return errors.New("gender name is required")
		}
		for _, full := range g.FullNames {
			if _, _, ok := splitFullName(full); !ok {
				return errors.Errorf("full name %q is not in \"Surname Given\" form", full)
			}
		}
	}
	return nil
}

func splitFullName(full string) (surname, given string, ok bool) {
	surname, given, ok = strings.Cut(strings.TrimSpace(full), " ")
	given = strings.TrimSpace(given)
	if !ok || surname == "" || given == "" {
		return "", "", false
	}
	return surname, given, true
}
