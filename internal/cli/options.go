// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"aptclust/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// I/O
	Input  string
	Output string

	// Clustering parameters
	Distance    int
	Filter      float64
	MaxClusters int

	// Performance
	Threads int

	// Output
	Format string
	Quiet  bool

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: greedy edit-distance clustering of ranked sequence pools

License: MIT
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// I/O
	fs.StringVar(&opt.Input, "input", "", "ranked FASTA input ('-' = stdin) [*]")
	fs.StringVar(&opt.Input, "i", "", "shorthand for -input")
	fs.StringVar(&opt.Output, "output", "", "clustered FASTA output ('-' = stdout) [*]")
	fs.StringVar(&opt.Output, "o", "", "shorthand for -output")

	// Clustering parameters
	fs.IntVar(&opt.Distance, "distance", -1, "max edit distance to join a cluster [*]")
	fs.IntVar(&opt.Distance, "d", -1, "shorthand for -distance")
	fs.Float64Var(&opt.Filter, "filter", 0, "exclude entries with reads <= filter [0]")
	fs.Float64Var(&opt.Filter, "f", 0, "shorthand for -filter")
	fs.IntVar(&opt.MaxClusters, "max-clusters", 0, "stop after N clusters (0 = unbounded) [0]")
	fs.IntVar(&opt.MaxClusters, "c", 0, "shorthand for -max-clusters")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for the candidate scan (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "shorthand for -threads")

	// Output
	fs.StringVar(&opt.Format, "format", "text", "output format: text | jsonl [text]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress reporting [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "shorthand for -quiet")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("-input is required")
	}
	if opt.Output == "" {
		return opt, errors.New("-output is required")
	}
	if opt.Distance < 0 {
		return opt, errors.New("-distance is required and must be ≥ 0")
	}
	if opt.Filter < 0 {
		return opt, errors.New("-filter must be ≥ 0")
	}
	if opt.MaxClusters < 0 {
		return opt, errors.New("-max-clusters must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("-threads must be ≥ 0")
	}
	if opt.Format != "text" && opt.Format != "jsonl" {
		return opt, fmt.Errorf("invalid -format %q", opt.Format)
	}
	return opt, nil
}
