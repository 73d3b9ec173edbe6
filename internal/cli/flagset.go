package cli

import (
	"flag"
	"fmt"
	"io"

	"goagree/internal/clibase"
)

// NewFlagSet returns a FlagSet with ContinueOnError and the tool's usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --index species.tsv\n", name)
		_, _ = fmt.Fprintf(out, "  %s [options] species.tsv\n", name)
	})
	return fs
}

// PrintExamples prints a tiny, focused quickstart.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Compare homology and prediction GO annotations for every species in an index.")
		_, _ = fmt.Fprintln(w, "\nIndex (TAB-separated):")
		_, _ = fmt.Fprintln(w, "  Aa_bb\tresults/Aa_bb.homology.tsv\tresults/Aa_bb.prediction.tsv")
		_, _ = fmt.Fprintln(w, "\nExample:")
		_, _ = fmt.Fprintf(w, "  %s \\\n", name)
		_, _ = fmt.Fprintln(w, "    --index species.tsv \\")
		_, _ = fmt.Fprintln(w, "    --output comparison.tsv \\")
		_, _ = fmt.Fprintln(w, "    --venn venn.json \\")
		_, _ = fmt.Fprintln(w, "    --threads 8")
	})
}
