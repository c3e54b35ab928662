package bulkcurate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/customeros/namesherpa/internal/logging"
	"github.com/customeros/namesherpa/internal/syntax"
	"github.com/customeros/namesherpa/namefile"
)

func analyzeFile(path, ext string, log *logging.Logger) *FileResult {
	result := &FileResult{Path: path}
	log.Print("\n=== Analyzing %s ===", filepath.Base(path))

	nf, err := namefile.Load(path)
	if err != nil {
		result.err = err
		result.Error = err.Error()
		log.Error("%v", err)
		return result
	}

	checkFileName(path, ext, nf, log)

	report := namefile.Analyze(nf)
	result.Report = report

	log.Print("Region: %s", orUnknown(report.Region))
	log.Print("Gender: %s", orUnknown(report.Gender))
	log.Print("Total first names: %d (unique: %d)", report.FirstNames.Total, report.FirstNames.Unique)
	log.Print("Total last names: %d (unique: %d)", report.LastNames.Total, report.LastNames.Unique)
	logField(log, "First", report.FirstNames)
	logField(log, "Last", report.LastNames)
	return result
}

// checkFileName warns when the region and gender stored in nf disagree with
// the <region>_<gender> name of the file they came from.
func checkFileName(path, ext string, nf *namefile.NameFile, log *logging.Logger) {
	region, gender, ok := syntax.ParseFileName(path, ext)
	if !ok {
		return
	}
	if label := nf.Label(); label != region+"_"+gender {
		log.Warn("%s holds %s data", filepath.Base(path), label)
	}
}

func logField(log *logging.Logger, label string, field namefile.FieldReport) {
	if !field.HasDuplicates() {
		log.OK("No %s name duplicates", strings.ToLower(label))
		return
	}
	log.Issue("%s name duplicates found: %d unique duplicated names", label, len(field.Duplicates))

	dupes := field.DuplicateNames()
	listed := make([]string, 0, len(dupes))
	for _, name := range dupes {
		listed = append(listed, fmt.Sprintf("%s (x%d)", name, field.Duplicates[name]))
	}
	log.Print("  %s", strings.Join(listed, ", "))
}

func dedupeFile(result *FileResult, opts Options) {
	log := opts.Log
	log.Print("\n=== Cleaning duplicates from %s ===", filepath.Base(result.Path))

	dedupe, err := dedupeNameFile(result.Path, opts.dedupeOptions())
	if dedupe != nil && dedupe.BackupErr != nil {
		log.Error("Backup failed, continuing without it: %v", dedupe.BackupErr)
	} else if dedupe != nil && dedupe.BackupPath != "" {
		log.OK("Backup created: %s", filepath.Base(dedupe.BackupPath))
	}
	if err != nil {
		result.err = err
		result.Error = err.Error()
		log.Error("%v", err)
		log.Error("%s was not updated", filepath.Base(result.Path))
		return
	}
	result.Dedupe = dedupe

	log.Print("First names: %d -> %d (removed %d)", dedupe.FirstNames.Before, dedupe.FirstNames.After, dedupe.FirstNames.Removed())
	log.Print("Last names: %d -> %d (removed %d)", dedupe.LastNames.Before, dedupe.LastNames.After, dedupe.LastNames.Removed())
	log.OK("File cleaned and saved")
}

func printSummary(log *logging.Logger, batch *BatchResult) {
	log.Section("SUMMARY OF DUPLICATES")

	for _, result := range batch.Files {
		if result.Report == nil || !result.Report.HasDuplicates() {
			continue
		}
		log.Issue("%s: %d duplicates", result.Report.Label(), result.Report.TotalExcess())
	}

	s := batch.Summary
	if len(s.Failures) > 0 {
		log.Warn("%d files could not be analyzed", len(s.Failures))
	}
	if s.FilesWithDuplicates == 0 {
		log.OK("No duplicate names found in any files!")
		return
	}

	log.Print("\nFiles with duplicates: %d/%d", s.FilesWithDuplicates, s.FilesAnalyzed)
	log.Print("Total duplicate first names to remove: %d", s.FirstNameExcess)
	log.Print("Total duplicate last names to remove: %d", s.LastNameExcess)
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
