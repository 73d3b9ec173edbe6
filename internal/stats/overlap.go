package stats

import "goagree/internal/annot"

// OverlapStats compares the homology (H) and prediction (F) mappings of one
// species.
//
// Both/OnlyH/OnlyF count proteins by presence in each mapping. The sums and
// MeanJaccard compare GO-set content over the union of protein ids, with an
// absent protein treated as an empty set.
type OverlapStats struct {
	Both  int
	OnlyH int
	OnlyF int

	IntersectionSum int
	UnionSum        int
	UniqueHSum      int
	UniqueFSum      int

	// MeanJaccard = JaccardTotal / JaccardEligible, 0 when nothing is eligible.
	// Proteins whose sets are empty on both sides are not eligible.
	MeanJaccard     float64
	JaccardTotal    float64
	JaccardEligible int
}

// Overlap computes OverlapStats for h and f.
func Overlap(h, f annot.Mapping) OverlapStats {
	var o OverlapStats
	visit := func(hs, fs map[string]struct{}) {
		inter := 0
		for id := range hs {
			if _, ok := fs[id]; ok {
				inter++
			}
		}
		union := len(hs) + len(fs) - inter
		o.IntersectionSum += inter
		o.UnionSum += union
		o.UniqueHSum += len(hs) - inter
		o.UniqueFSum += len(fs) - inter
		if union > 0 {
			o.JaccardTotal += float64(inter) / float64(union)
			o.JaccardEligible++
		}
	}
	for p, hs := range h {
		fs, ok := f[p]
		if ok {
			o.Both++
		} else {
			o.OnlyH++
		}
		visit(hs, fs)
	}
	for p, fs := range f {
		if _, ok := h[p]; ok {
			continue
		}
		o.OnlyF++
		visit(nil, fs)
	}
	o.MeanJaccard = ratio(o.JaccardTotal, o.JaccardEligible)
	return o
}
