package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/namefile"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = previous })
	return &buf
}

func testConfig(dir string) *config.Config {
	cfg := config.DefaultConfig()
	cfg.NamesDir = dir
	cfg.Color = config.ColorNever
	return cfg
}

func TestResolveDir(t *testing.T) {
	cfg := testConfig("assets/data/names")

	assert.Equal(t, "other", ResolveDir([]string{"clean", "other"}, 1, cfg))
	assert.Equal(t, "assets/data/names", ResolveDir([]string{"clean"}, 1, cfg))
}

func TestBuildOptions(t *testing.T) {
	cfg := testConfig("names")
	cfg.Backup = false
	cfg.BackupSuffix = ".orig"

	opts := BuildOptions(cfg)

	assert.False(t, opts.Backup)
	assert.Equal(t, ".orig", opts.BackupSuffix)
	assert.Equal(t, ".json", opts.Extension)
	assert.Nil(t, opts.Progress)
	assert.NotNil(t, opts.Log)
}

func TestGenerateThenClean(t *testing.T) {
	out := captureStdout(t)
	dir := filepath.Join(t.TempDir(), "names")
	cfg := testConfig(dir)

	written, err := Generate(dir, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, written)
	assert.Contains(t, out.String(), "[OK] Generated eastAsian_female.json")

	// the north african seed keeps its literal repeats
	before, err := namefile.Load(filepath.Join(dir, "northafrican_male.json"))
	require.NoError(t, err)
	excess := namefile.Analyze(before).TotalExcess()
	require.Greater(t, excess, 0)

	result, err := Clean(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, result.Summary.TotalExcess(), result.Summary.TotalRemoved)
	assert.Equal(t, len(written), result.Summary.FilesCleaned)

	after, err := namefile.Load(filepath.Join(dir, "northafrican_male.json"))
	require.NoError(t, err)
	assert.False(t, namefile.Analyze(after).HasDuplicates())

	again, err := Analyze(dir, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Summary.FilesWithDuplicates)
	assert.Equal(t, len(written), again.Summary.FilesAnalyzed)
}

func TestAnalyzeJSONOutput(t *testing.T) {
	out := captureStdout(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "eastAsian_male.json"),
		[]byte(`{"region":"eastAsian","gender":"male","firstNames":["Kim","Lee","Kim"],"lastNames":["Park","Park"]}`), 0644))
	cfg := testConfig(dir)
	cfg.JSON = true

	_, err := Analyze(dir, cfg)
	require.NoError(t, err)

	var decoded struct {
		Summary struct {
			FilesWithDuplicates int `json:"filesWithDuplicates"`
			FirstNameExcess     int `json:"firstNameExcess"`
			LastNameExcess      int `json:"lastNameExcess"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Summary.FilesWithDuplicates)
	assert.Equal(t, 1, decoded.Summary.FirstNameExcess)
	assert.Equal(t, 1, decoded.Summary.LastNameExcess)
}

func TestSample(t *testing.T) {
	out := captureStdout(t)
	path := filepath.Join(t.TempDir(), "oceania_female.json")
	require.NoError(t, namefile.Save(path, &namefile.NameFile{
		Region:     "oceania",
		Gender:     "female",
		FirstNames: []string{"Aroha", "Moana"},
		LastNames:  []string{"Ngata"},
	}))

	response, err := Sample(path, 3, testConfig(""))
	require.NoError(t, err)

	require.Len(t, response.Names, 3)
	for _, name := range response.Names {
		assert.True(t, name == "Aroha Ngata" || name == "Moana Ngata", name)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 3)
}

func TestSampleErrors(t *testing.T) {
	captureStdout(t)
	dir := t.TempDir()

	_, err := Sample(filepath.Join(dir, "missing.json"), 1, testConfig(dir))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty_male.json")
	require.NoError(t, namefile.Save(empty, &namefile.NameFile{Region: "empty", Gender: "male"}))
	_, err = Sample(empty, 1, testConfig(dir))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out := captureStdout(t)
	Version()
	assert.Equal(t, "NameSherpa dev\n", out.String())
}
