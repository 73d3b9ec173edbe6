// Package compare runs the per-species unit of work: read both annotation
// tables, reduce them to statistics, and drop the mappings.
package compare

import (
	"context"

	"goagree/internal/annot"
	"goagree/internal/manifest"
	"goagree/internal/stats"
)

// Result is the outcome for one species.
type Result struct {
	Row          stats.Row
	DiagnosticsH []annot.Diagnostic
	DiagnosticsF []annot.Diagnostic
}

// ZeroProteins reports whether either source parsed to an empty mapping
// even though its file was present and non-empty.
func (r Result) ZeroProteins() bool { return r.Row.H.Proteins == 0 || r.Row.F.Proteins == 0 }

// Species processes one index entry. A missing or empty input is returned
// as *annot.InputError and the species should be skipped.
func Species(ctx context.Context, e manifest.Entry, opt annot.Options) (Result, error) {
	for _, p := range []string{e.HomologyPath, e.PredictionPath} {
		if err := annot.CheckInput(p); err != nil {
			return Result{}, err
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	h, dh, err := annot.ParseFile(e.HomologyPath, opt)
	if err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	f, df, err := annot.ParseFile(e.PredictionPath, opt)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Row: stats.Row{
			Species: e.Species,
			H:       stats.Source(h),
			F:       stats.Source(f),
			Overlap: stats.Overlap(h, f),
		},
		DiagnosticsH: dh,
		DiagnosticsF: df,
	}, nil
}
