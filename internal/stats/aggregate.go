package stats

// SummaryLabel is the species column of the summary row.
const SummaryLabel = "TOTAL"

// Aggregator folds per-species rows into running raw totals. Percentages and
// means are never averaged; Summary re-derives them from the totals, so the
// result equals processing all species as one dataset.
//
// An Aggregator is not safe for concurrent use.
type Aggregator struct {
	n int
	h sourceTotals
	f sourceTotals
	o OverlapStats
}

type sourceTotals struct{ proteins, totalGO, annotated int }

func (t *sourceTotals) add(s SourceStats) {
	t.proteins += s.Proteins
	t.totalGO += s.TotalGO
	t.annotated += s.Annotated
}

func (t sourceTotals) stats() SourceStats {
	s := SourceStats{Proteins: t.proteins, TotalGO: t.totalGO, Annotated: t.annotated}
	s.finish()
	return s
}

// Add folds r into the totals.
func (a *Aggregator) Add(r Row) {
	a.n++
	a.h.add(r.H)
	a.f.add(r.F)
	a.o.Both += r.Overlap.Both
	a.o.OnlyH += r.Overlap.OnlyH
	a.o.OnlyF += r.Overlap.OnlyF
	a.o.IntersectionSum += r.Overlap.IntersectionSum
	a.o.UnionSum += r.Overlap.UnionSum
	a.o.UniqueHSum += r.Overlap.UniqueHSum
	a.o.UniqueFSum += r.Overlap.UniqueFSum
	a.o.JaccardTotal += r.Overlap.JaccardTotal
	a.o.JaccardEligible += r.Overlap.JaccardEligible
}

// Species returns how many rows have been added.
func (a *Aggregator) Species() int { return a.n }

// Summary returns the summary row. With no species added every field is zero.
func (a *Aggregator) Summary() Row {
	o := a.o
	o.MeanJaccard = ratio(o.JaccardTotal, o.JaccardEligible)
	return Row{
		Species: SummaryLabel,
		H:       a.h.stats(),
		F:       a.f.stats(),
		Overlap: o,
	}
}
