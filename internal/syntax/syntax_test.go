package syntax

import (
	"testing"
)

func TestParseFileName(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		wantRegion string
		wantGender string
		wantOk     bool
	}{
		{"Simple", "eastAsian_female.json", "eastAsian", "female", true},
		{"With directory", "data/names/middleEastern_male.json", "middleEastern", "male", true},
		{"Underscored region", "north_african_male.json", "north_african", "male", true},
		{"Backup file", "oceania_male_backup.json", "oceania_male", "backup", true},
		{"No underscore", "names.json", "", "", false},
		{"Trailing underscore", "oceania_.json", "", "", false},
		{"Leading underscore", "_male.json", "", "", false},
		{"Wrong extension", "oceania_male.txt", "", "", false},
		{"Extension only", ".json", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, gender, ok := ParseFileName(tt.file, DefaultExtension)
			if region != tt.wantRegion || gender != tt.wantGender || ok != tt.wantOk {
				t.Errorf("ParseFileName(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.file, region, gender, ok, tt.wantRegion, tt.wantGender, tt.wantOk)
			}
		})
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("southAsian", "female", DefaultExtension); got != "southAsian_female.json" {
		t.Errorf("FileName() = %q, want %q", got, "southAsian_female.json")
	}
}

func TestBackupPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		suffix string
		want   string
	}{
		{"Default suffix", "names/oceania_male.json", DefaultBackupSuffix, "names/oceania_male_backup.json"},
		{"Only trailing extension replaced", "a.json.d/oceania_male.json", DefaultBackupSuffix, "a.json.d/oceania_male_backup.json"},
		{"Custom suffix", "oceania_male.json", ".orig", "oceania_male.orig.json"},
		{"Missing extension", "oceania_male", DefaultBackupSuffix, "oceania_male_backup.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BackupPath(tt.path, tt.suffix, DefaultExtension); got != tt.want {
				t.Errorf("BackupPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsBackup(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		suffix string
		want   bool
	}{
		{"Backup", "names/oceania_male_backup.json", DefaultBackupSuffix, true},
		{"Regular", "names/oceania_male.json", DefaultBackupSuffix, false},
		{"Empty suffix never matches", "oceania_male.json", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBackup(tt.file, tt.suffix, DefaultExtension); got != tt.want {
				t.Errorf("IsBackup(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}
