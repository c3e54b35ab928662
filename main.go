package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/customeros/namesherpa/cli"
	"github.com/customeros/namesherpa/internal/config"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	noBackup := flag.Bool("no-backup", false, "do not write backups before cleaning")
	jsonOutput := flag.Bool("json", false, "print results as JSON")
	color := flag.String("color", "", "color mode: auto, always or never")
	progress := flag.Bool("progress", false, "show a progress bar")
	flag.Usage = cli.PrintUsage
	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		cli.PrintUsage()
		return
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		unknown, err := config.LoadFile(*configPath, cfg)
		if err != nil {
			fatal(err)
		}
		for _, key := range unknown {
			fmt.Fprintf(os.Stderr, "ignoring unknown config key %q\n", key)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "no-backup":
			cfg.Backup = !*noBackup
		case "json":
			cfg.JSON = *jsonOutput
		case "color":
			cfg.Color = config.ColorMode(*color)
		case "progress":
			cfg.Progress = *progress
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	var err error
	switch args[0] {
	case "analyze":
		_, err = cli.Analyze(cli.ResolveDir(args, 1, cfg), cfg)
	case "clean":
		_, err = cli.Clean(cli.ResolveDir(args, 1, cfg), cfg)
	case "generate":
		_, err = cli.Generate(cli.ResolveDir(args, 1, cfg), cfg)
	case "sample":
		if len(args) < 2 || len(args) > 3 {
			fmt.Println("Usage: namesherpa sample <name file> [count]")
			os.Exit(1)
		}
		count := 0
		if len(args) == 3 {
			count, err = strconv.Atoi(args[2])
			if err != nil {
				fatal(fmt.Errorf("invalid count %q", args[2]))
			}
		}
		_, err = cli.Sample(args[1], count, cfg)
	case "version":
		cli.Version()
	default:
		fmt.Println("Unknown command.")
		cli.PrintUsage()
		os.Exit(1)
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "[ERROR]", err)
	os.Exit(1)
}
