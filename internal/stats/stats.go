// Package stats reduces annotation mappings to the agreement figures of the
// comparative report: per-source coverage, per-species overlap, and the
// count-weighted cross-species summary.
package stats

import "goagree/internal/annot"

// SourceStats summarises one source's mapping for one species.
type SourceStats struct {
	Proteins         int
	TotalGO          int
	Annotated        int
	Unannotated      int
	MeanGOPerProtein float64
	CoveragePercent  float64
}

// Source computes SourceStats for m.
func Source(m annot.Mapping) SourceStats {
	var s SourceStats
	s.Proteins = len(m)
	for _, set := range m {
		n := set.Len()
		s.TotalGO += n
		if n > 0 {
			s.Annotated++
		}
	}
	s.finish()
	return s
}

// finish derives Unannotated and the ratios from the raw counters.
func (s *SourceStats) finish() {
	s.Unannotated = s.Proteins - s.Annotated
	s.MeanGOPerProtein = ratio(float64(s.TotalGO), s.Proteins)
	s.CoveragePercent = 100 * ratio(float64(s.Annotated), s.Proteins)
}

func ratio(num float64, den int) float64 {
	if den == 0 {
		return 0
	}
	return num / float64(den)
}

// Row is one line of the comparative report.
type Row struct {
	Species string
	H, F    SourceStats
	Overlap OverlapStats
}
