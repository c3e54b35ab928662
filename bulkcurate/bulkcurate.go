package bulkcurate

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"

	"github.com/customeros/namesherpa/internal/logging"
	"github.com/customeros/namesherpa/internal/syntax"
	"github.com/customeros/namesherpa/namefile"
)

var ErrDirectoryNotFound = errors.New("names directory not found")

// dedupeNameFile is swapped in tests to fail individual writes.
var dedupeNameFile = namefile.DedupeFile

type Options struct {
	Extension    string
	Backup       bool
	BackupSuffix string
	// Progress receives a progress bar when set.
	Progress io.Writer
	Log      *logging.Logger
}

func DefaultOptions() Options {
	return Options{
		Extension:    syntax.DefaultExtension,
		Backup:       true,
		BackupSuffix: syntax.DefaultBackupSuffix,
		Log:          logging.Discard(),
	}
}

func (o Options) dedupeOptions() namefile.DedupeOptions {
	return namefile.DedupeOptions{
		Backup:       o.Backup,
		BackupSuffix: o.BackupSuffix,
		Extension:    o.Extension,
	}
}

type FileResult struct {
	Path   string                    `json:"path"`
	Report *namefile.DuplicateReport `json:"report,omitempty"`
	Dedupe *namefile.DedupeResult    `json:"dedupe,omitempty"`
	Error  string                    `json:"error,omitempty"`

	err error
}

func (r *FileResult) Err() error {
	return r.err
}

type Failure struct {
	Path  string `json:"path"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

type Summary struct {
	FilesScanned        int       `json:"filesScanned"`
	FilesAnalyzed       int       `json:"filesAnalyzed"`
	FilesWithDuplicates int       `json:"filesWithDuplicates"`
	FirstNameExcess     int       `json:"firstNameExcess"`
	LastNameExcess      int       `json:"lastNameExcess"`
	FilesCleaned        int       `json:"filesCleaned"`
	TotalRemoved        int       `json:"totalRemoved"`
	Failures            []Failure `json:"failures,omitempty"`
}

func (s *Summary) TotalExcess() int {
	return s.FirstNameExcess + s.LastNameExcess
}

type BatchResult struct {
	Dir     string        `json:"dir"`
	Files   []*FileResult `json:"files"`
	Summary Summary       `json:"summary"`
}

// ListNameFiles returns the name files in dir in lexicographic order. Backups
// written by the deduplicator are left out.
func ListNameFiles(dir, ext, backupSuffix string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(ErrDirectoryNotFound, dir)
		}
		return nil, errors.Wrapf(err, "failed to open %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrDirectoryNotFound, "%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", dir)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !syntax.HasExtension(name, ext) || syntax.IsBackup(name, backupSuffix, ext) {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	slices.Sort(files)
	return files, nil
}

// AnalyzeDir runs the duplicate analyzer over every name file in dir. Files
// that cannot be read or parsed are logged and recorded as failures; they do
// not stop the batch.
func AnalyzeDir(dir string, opts Options) (*BatchResult, error) {
	opts = withDefaults(opts)
	files, err := ListNameFiles(dir, opts.Extension, opts.BackupSuffix)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{Dir: dir, Files: make([]*FileResult, 0, len(files))}
	batch.Summary.FilesScanned = len(files)
	if len(files) == 0 {
		opts.Log.Error("No %s files found in %s", opts.Extension, dir)
		return batch, nil
	}
	opts.Log.Info("Found %d name files to analyze", len(files))

	bar := newBar(opts.Progress, len(files), "analyzing")
	for _, path := range files {
		result := analyzeFile(path, opts.Extension, opts.Log)
		batch.Files = append(batch.Files, result)
		batch.Summary.addAnalysis(result)
		addProgress(bar)
	}
	finishBar(bar)

	printSummary(opts.Log, batch)
	return batch, nil
}

// CleanDir analyzes dir and, when any file holds duplicates, deduplicates
// every name file in it.
func CleanDir(dir string, opts Options) (*BatchResult, error) {
	opts = withDefaults(opts)
	batch, err := AnalyzeDir(dir, opts)
	if err != nil {
		return nil, err
	}
	if batch.Summary.FilesWithDuplicates == 0 {
		return batch, nil
	}

	opts.Log.Section("CLEANING DUPLICATES")

	bar := newBar(opts.Progress, batch.Summary.FilesAnalyzed, "cleaning")
	for _, result := range batch.Files {
		// Files the analyzer rejected would fail the same way here.
		if result.err != nil {
			continue
		}
		dedupeFile(result, opts)
		batch.Summary.addDedupe(result)
		addProgress(bar)
	}
	finishBar(bar)

	opts.Log.Print("")
	opts.Log.OK("Cleaning complete! Removed %d duplicate names total.", batch.Summary.TotalRemoved)
	opts.Log.Info("Re-run the analysis to verify all duplicates were removed.")
	return batch, nil
}

func withDefaults(opts Options) Options {
	if opts.Extension == "" {
		opts.Extension = syntax.DefaultExtension
	}
	if opts.Log == nil {
		opts.Log = logging.Discard()
	}
	return opts
}

func (s *Summary) addAnalysis(result *FileResult) {
	if result.err != nil {
		s.Failures = append(s.Failures, Failure{Path: result.Path, Stage: "analyze", Error: result.Error})
		return
	}
	s.FilesAnalyzed++
	if result.Report.HasDuplicates() {
		s.FilesWithDuplicates++
		s.FirstNameExcess += result.Report.FirstNames.Excess
		s.LastNameExcess += result.Report.LastNames.Excess
	}
}

func (s *Summary) addDedupe(result *FileResult) {
	if result.err != nil {
		s.Failures = append(s.Failures, Failure{Path: result.Path, Stage: "clean", Error: result.Error})
		return
	}
	s.FilesCleaned++
	s.TotalRemoved += result.Dedupe.TotalRemoved()
}

func newBar(w io.Writer, max int, description string) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func addProgress(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Add(1)
	}
}

func finishBar(bar *progressbar.ProgressBar) {
	if bar != nil {
		_ = bar.Finish()
	}
}
