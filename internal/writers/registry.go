package writers

import (
	"fmt"
	"io"
	"sort"

	"goagree/internal/jsonutil"
	"goagree/internal/stats"
)

// Venn formats.
const (
	VennJSON = "json"
	VennTSV  = "tsv"
)

// VennWriters maps a format name to its serializer.
// Register in init(); registration is last-wins.
var VennWriters = map[string]func(w io.Writer, v stats.Venn) error{}

func RegisterVenn(format string, fn func(io.Writer, stats.Venn) error) { VennWriters[format] = fn }

// WriteVenn dispatches to the writer registered for format.
func WriteVenn(format string, w io.Writer, v stats.Venn) error {
	fn, ok := VennWriters[format]
	if !ok {
		return fmt.Errorf("unknown venn format %q (no writer registered)", format)
	}
	return fn(w, v)
}

// VennFormats lists registered formats, sorted.
func VennFormats() []string {
	out := make([]string, 0, len(VennWriters))
	for k := range VennWriters {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterVenn(VennJSON, func(w io.Writer, v stats.Venn) error {
		return jsonutil.EncodePretty(w, v)
	})
	RegisterVenn(VennTSV, func(w io.Writer, v stats.Venn) error {
		_, err := fmt.Fprintf(w, "only_h\tonly_f\tboth\n%d\t%d\t%d\n", v.OnlyH, v.OnlyF, v.Both)
		return err
	})
}
