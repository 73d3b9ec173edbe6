// Package app wires the command line to the comparison pipeline.
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"goagree/internal/annot"
	"goagree/internal/cli"
	"goagree/internal/clibase"
	"goagree/internal/cmdutil"
	"goagree/internal/compare"
	"goagree/internal/manifest"
	"goagree/internal/pipeline"
	"goagree/internal/stats"
	"goagree/internal/version"
	"goagree/internal/writers"
)

const name = "goagree"

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitCanceled = 130
)

// RunContext parses argv, runs the comparison and returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	switch {
	case errors.Is(err, clibase.ErrPrintedAndExitOK):
		cli.PrintExamples(stdout, name)
		return ExitOK
	case errors.Is(err, flag.ErrHelp):
		return printUsage(fs, stdout, stderr, ExitOK)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, err)
		return printUsage(fs, stderr, stderr, ExitUsage)
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return ExitOK
	}
	return Run(parent, opts, stdout, stderr)
}

func printUsage(fs *flag.FlagSet, out, stderr io.Writer, code int) int {
	bw := bufio.NewWriter(out)
	fs.SetOutput(bw)
	fs.Usage()
	if e := bw.Flush(); e != nil && !writers.IsBrokenPipe(e) {
		_, _ = fmt.Fprintln(stderr, e)
		return ExitIO
	}
	return code
}

// Run executes a parsed configuration.
func Run(ctx context.Context, o cli.Options, stdout, stderr io.Writer) int {
	entries, bad, err := manifest.Load(o.Index, manifest.Options{RelativeToIndex: o.RelativePaths})
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitUsage
	}
	for _, b := range bad {
		cmdutil.Warnf(stderr, o.Quiet, "skipping index row: %v", b)
	}

	out, header, err := writers.OpenReport(o.Output, stdout)
	if err != nil {
		cmdutil.Errorf(stderr, "%v", err)
		return ExitIO
	}

	threads := o.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	aopt := annot.Options{HeaderTokens: o.HeaderTokens, Duplicates: o.Duplicates, Strict: o.Strict}

	rows, writeErr := writers.StartReportWriter(out, header, threads*2)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var agg stats.Aggregator
	skipped := 0
	perr := pipeline.ForEachSpecies[compare.Result](ctx, pipeline.Config{Threads: threads}, entries,
		pipeline.ProcessFunc[compare.Result](func(ctx context.Context, e manifest.Entry) (compare.Result, error) {
			return compare.Species(ctx, e, aopt)
		}),
		func(e manifest.Entry, res compare.Result, err error) error {
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				skipped++
				cmdutil.Warnf(stderr, o.Quiet, "skipping species %s: %v", e.Species, err)
				return nil
			}
			for _, d := range res.DiagnosticsH {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s %v", e.Species, e.HomologyPath, d)
			}
			for _, d := range res.DiagnosticsF {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s %v", e.Species, e.PredictionPath, d)
			}
			if res.ZeroProteins() {
				cmdutil.Warnf(stderr, o.Quiet, "%s: no proteins parsed (homology=%d, prediction=%d)",
					e.Species, res.Row.H.Proteins, res.Row.F.Proteins)
			}
			select {
			case rows <- res.Row:
			case <-ctx.Done():
				return ctx.Err()
			}
			agg.Add(res.Row)
			cmdutil.Infof(stderr, o.Quiet, "%s: coverage h=%.2f%% f=%.2f%%, mean jaccard %.4f",
				e.Species, res.Row.H.CoveragePercent, res.Row.F.CoveragePercent, res.Row.Overlap.MeanJaccard)
			return nil
		},
	)

	summary := agg.Summary()
	if perr == nil {
		rows <- summary
	}
	close(rows)
	werr := <-writeErr
	if cerr := out.Close(); werr == nil {
		werr = cerr
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitCanceled
		}
		cmdutil.Errorf(stderr, "%v", perr)
		return ExitIO
	}
	if writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		cmdutil.Errorf(stderr, "%v", &writers.OutputWriteError{Path: o.Output, Err: werr})
		return ExitIO
	}

	if agg.Species() == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "no species could be compared; report holds only the summary row")
	}
	cmdutil.Infof(stderr, o.Quiet, "compared %d species, skipped %d; overall coverage h=%.2f%% f=%.2f%%",
		agg.Species(), skipped, summary.H.CoveragePercent, summary.F.CoveragePercent)

	venn := stats.VennSizes(summary)
	if o.Venn == "" {
		cmdutil.Infof(stderr, o.Quiet, "venn sizes: only_h=%d only_f=%d both=%d", venn.OnlyH, venn.OnlyF, venn.Both)
		return ExitOK
	}
	if err := writeVenn(o.Venn, o.VennFormat, stdout, venn); err != nil {
		cmdutil.Errorf(stderr, "venn %s: %v", o.Venn, err)
		return ExitIO
	}
	return ExitOK
}

func writeVenn(path, format string, stdout io.Writer, v stats.Venn) error {
	if path == "-" {
		return writers.WriteVenn(format, stdout, v)
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writers.WriteVenn(format, fh, v); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
