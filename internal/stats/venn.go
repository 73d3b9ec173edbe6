package stats

// Venn holds the three region sizes of a two-set overlap diagram of GO-term
// assignments.
type Venn struct {
	OnlyH int `json:"only_h"`
	OnlyF int `json:"only_f"`
	Both  int `json:"both"`
}

// VennSizes derives the diagram sizes from a (summary) row. Negative values
// cannot occur for consistent input but are clamped to zero.
func VennSizes(r Row) Venn {
	both := r.Overlap.IntersectionSum
	return Venn{
		OnlyH: max(r.H.TotalGO-both, 0),
		OnlyF: max(r.F.TotalGO-both, 0),
		Both:  max(both, 0),
	}
}
