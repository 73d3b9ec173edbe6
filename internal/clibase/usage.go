package clibase

import (
	"flag"
	"fmt"
	"io"

	"goagree/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – GO annotation agreement between homology and prediction sources\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -i, --index file            Master index: species<TAB>homology<TAB>prediction [*]")
		fmt.Fprintln(out, "  -c, --config file           YAML run configuration (flags override it)")
		fmt.Fprintf(out, "      --relative-paths        Resolve index paths against the index directory [%s]\n", def("relative-paths"))
		fmt.Fprintln(out, "      --header-token string   First-column value marking a header line (repeatable)")
		fmt.Fprintf(out, "      --duplicates string     Repeated protein rows: last | merge [%s]\n", def("duplicates"))
		fmt.Fprintf(out, "      --strict                Fail a species on rows without a protein id [%s]\n", def("strict"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output file           Comparative report, appended ('-' = STDOUT) [%s]\n", def("output"))
		fmt.Fprintln(out, "      --venn file             Write two-set sizes for the overlap diagram ('-' = STDOUT)")
		fmt.Fprintf(out, "      --venn-format string    Venn output: json | tsv [%s]\n", def("venn-format"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Species processed in parallel (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings and progress [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
