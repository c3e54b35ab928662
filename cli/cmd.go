package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/customeros/namesherpa/bulkcurate"
	"github.com/customeros/namesherpa/datasets"
	"github.com/customeros/namesherpa/internal/config"
	"github.com/customeros/namesherpa/internal/util"
	"github.com/customeros/namesherpa/namefile"
)

var version = "dev"

var stdout io.Writer = os.Stdout

const defaultSampleCount = 5

func PrintUsage() {
	fmt.Fprintln(stdout, "Usage: namesherpa [flags] <command> [arguments]")
	fmt.Fprintln(stdout, "Commands:")
	fmt.Fprintln(stdout, "  analyze [names dir]")
	fmt.Fprintln(stdout, "  clean [names dir]")
	fmt.Fprintln(stdout, "  generate [names dir]")
	fmt.Fprintln(stdout, "  sample <name file> [count]")
	fmt.Fprintln(stdout, "  version")
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -config <file>   TOML config file")
	fmt.Fprintln(stdout, "  -no-backup       do not write backups before cleaning")
	fmt.Fprintln(stdout, "  -json            print results as JSON")
	fmt.Fprintln(stdout, "  -color <mode>    auto, always or never")
	fmt.Fprintln(stdout, "  -progress        show a progress bar")
}

// Analyze reports duplicates in every name file of dir without changing them.
func Analyze(dir string, cfg *config.Config) (*bulkcurate.BatchResult, error) {
	result, err := bulkcurate.AnalyzeDir(dir, BuildOptions(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.JSON {
		printOutput(result)
	}
	return result, nil
}

// Clean analyzes dir and removes duplicates from its name files.
func Clean(dir string, cfg *config.Config) (*bulkcurate.BatchResult, error) {
	result, err := bulkcurate.CleanDir(dir, BuildOptions(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.JSON {
		printOutput(result)
	}
	return result, nil
}

// Generate writes the built-in datasets into dir.
func Generate(dir string, cfg *config.Config) ([]string, error) {
	written, err := datasets.Generate(dir, cfg.Extension, BuildLogger(cfg))
	if err != nil {
		return written, err
	}
	if cfg.JSON {
		printOutput(written)
	}
	return written, nil
}

type SampleResponse struct {
	Region string   `json:"region"`
	Gender string   `json:"gender"`
	Names  []string `json:"names"`
}

// Sample prints count random first/last name combinations from a name file.
func Sample(path string, count int, cfg *config.Config) (SampleResponse, error) {
	nf, err := namefile.Load(path)
	if err != nil {
		return SampleResponse{}, err
	}
	if count <= 0 {
		count = defaultSampleCount
	}

	response := SampleResponse{Region: nf.Region, Gender: nf.Gender}
	rng := util.NewRand()
	for i := 0; i < count; i++ {
		first, last, err := util.GenerateNames(rng, nf.FirstNames, nf.LastNames)
		if err != nil {
			return SampleResponse{}, errors.Wrap(err, path)
		}
		response.Names = append(response.Names, first+" "+last)
	}

	if cfg.JSON {
		printOutput(response)
		return response, nil
	}
	for _, name := range response.Names {
		fmt.Fprintln(stdout, name)
	}
	return response, nil
}

func Version() {
	fmt.Fprintf(stdout, "NameSherpa %s\n", version)
}

func printOutput(response interface{}) {
	jsonData, err := json.MarshalIndent(response, "", "    ")
	if err != nil {
		fmt.Fprintln(stdout, "Error marshalling JSON:", err)
		return
	}
	fmt.Fprintln(stdout, string(jsonData))
}
