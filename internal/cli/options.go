package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"goagree/internal/annot"
	"goagree/internal/clibase"
	"goagree/internal/cliutil"
	"goagree/internal/config"
	"goagree/internal/writers"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Index         string
	Config        string
	RelativePaths bool
	HeaderTokens  []string
	Duplicates    string
	Strict        bool

	// Output
	Output     string
	Venn       string
	VennFormat string

	// Performance
	Threads int

	// Misc
	Quiet   bool
	Version bool
}

// ParseArgs registers and parses all flags, merges the optional YAML config
// (explicit flags win) and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	// Input
	fs.StringVar(&o.Index, "index", "", "master index TSV [*]")
	fs.StringVar(&o.Index, "i", "", "alias of --index")
	fs.StringVar(&o.Config, "config", "", "YAML run configuration")
	fs.StringVar(&o.Config, "c", "", "alias of --config")
	fs.BoolVar(&o.RelativePaths, "relative-paths", false, "resolve index paths against the index directory [false]")
	fs.Var(&clibase.SliceValue{Dst: &o.HeaderTokens}, "header-token", "first-column value marking a header line (repeatable)")
	fs.StringVar(&o.Duplicates, "duplicates", annot.DuplicatesLast, "repeated protein rows: last | merge [last]")
	fs.BoolVar(&o.Strict, "strict", false, "fail a species on rows without a protein id [false]")

	// Output
	fs.StringVar(&o.Output, "output", "go_comparison.tsv", "comparative report path or '-'")
	fs.StringVar(&o.Output, "o", "go_comparison.tsv", "alias of --output")
	fs.StringVar(&o.Venn, "venn", "", "two-set sizes output path or '-'")
	fs.StringVar(&o.VennFormat, "venn-format", writers.VennJSON, "venn output: json | tsv [json]")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "species processed in parallel (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")

	// Misc
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress warnings [false]")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	switch len(posArgs) {
	case 0:
	case 1:
		if o.Index != "" {
			return o, fmt.Errorf("index given twice: --index %s and %s", o.Index, posArgs[0])
		}
		o.Index = posArgs[0]
	default:
		return o, fmt.Errorf("unexpected arguments: %s", strings.Join(posArgs[1:], " "))
	}

	if o.Config != "" {
		cf, err := config.Load(o.Config)
		if err != nil {
			return o, err
		}
		applyConfig(fs, &o, cf)
	}
	return o, Validate(o)
}

// applyConfig copies config values into o for every flag that was not set
// explicitly on the command line.
func applyConfig(fs *flag.FlagSet, o *Options, cf config.File) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	explicit := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return true
			}
		}
		return false
	}

	if cf.Index != "" && o.Index == "" {
		o.Index = cf.Index
	}
	if cf.Output != "" && !explicit("output", "o") {
		o.Output = cf.Output
	}
	if cf.Venn != "" && !explicit("venn") {
		o.Venn = cf.Venn
	}
	if cf.VennFormat != "" && !explicit("venn-format") {
		o.VennFormat = cf.VennFormat
	}
	if cf.Threads != nil && !explicit("threads", "t") {
		o.Threads = *cf.Threads
	}
	if cf.Duplicates != "" && !explicit("duplicates") {
		o.Duplicates = cf.Duplicates
	}
	if len(cf.HeaderTokens) > 0 && !explicit("header-token") {
		o.HeaderTokens = append([]string(nil), cf.HeaderTokens...)
	}
	if cf.Strict != nil && !explicit("strict") {
		o.Strict = *cf.Strict
	}
	if cf.RelativePaths != nil && !explicit("relative-paths") {
		o.RelativePaths = *cf.RelativePaths
	}
	if cf.Quiet != nil && !explicit("quiet", "q") {
		o.Quiet = *cf.Quiet
	}
}

// Validate applies CLI invariants.
func Validate(o Options) error {
	if o.Index == "" {
		return errors.New("a master index is required (--index or positional)")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if !annot.ValidDuplicates(o.Duplicates) {
		return fmt.Errorf("invalid --duplicates %q", o.Duplicates)
	}
	if _, ok := writers.VennWriters[o.VennFormat]; !ok {
		return fmt.Errorf("invalid --venn-format %q", o.VennFormat)
	}
	if o.Output == "-" && o.Venn == "-" {
		return errors.New("--output and --venn cannot both be STDOUT")
	}
	return nil
}
