package namefile

import (
	"golang.org/x/exp/slices"

	"github.com/customeros/namesherpa/internal/names"
)

type FieldReport struct {
	Total      int            `json:"total"`
	Unique     int            `json:"unique"`
	Excess     int            `json:"excess"`
	Duplicates map[string]int `json:"duplicates"`
}

func (f FieldReport) HasDuplicates() bool {
	return len(f.Duplicates) > 0
}

// DuplicateNames returns the duplicated values in sorted order.
func (f FieldReport) DuplicateNames() []string {
	keys := make([]string, 0, len(f.Duplicates))
	for name := range f.Duplicates {
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return keys
}

type DuplicateReport struct {
	Region     string      `json:"region"`
	Gender     string      `json:"gender"`
	FirstNames FieldReport `json:"firstNames"`
	LastNames  FieldReport `json:"lastNames"`
}

// Label returns region_gender, using "unknown" for blank parts.
func (r *DuplicateReport) Label() string {
	return orUnknown(r.Region) + "_" + orUnknown(r.Gender)
}

func (r *DuplicateReport) HasDuplicates() bool {
	return r.FirstNames.HasDuplicates() || r.LastNames.HasDuplicates()
}

func (r *DuplicateReport) TotalExcess() int {
	return r.FirstNames.Excess + r.LastNames.Excess
}

// Analyze counts occurrences in both name lists of nf. It never modifies nf.
func Analyze(nf *NameFile) *DuplicateReport {
	return &DuplicateReport{
		Region:     nf.Region,
		Gender:     nf.Gender,
		FirstNames: analyzeField(nf.FirstNames),
		LastNames:  analyzeField(nf.LastNames),
	}
}

func analyzeField(values []string) FieldReport {
	counts := names.Count(values)
	dupes := names.Duplicates(counts)
	return FieldReport{
		Total:      len(values),
		Unique:     len(counts),
		Excess:     names.Excess(dupes),
		Duplicates: dupes,
	}
}
