package writers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"goagree/internal/stats"
)

// ReportColumns is the header row of the comparative report.
// Keep this as the single source of truth; reportRecord tags must match it.
var ReportColumns = []string{
	"species",
	"protes_h", "gos_totales_h", "id_con_go_h", "id_sin_go_h", "gos_por_gen_h",
	"protes_f", "gos_totales_f", "id_con_go_f", "id_sin_go_f", "gos_por_gen_f",
	"prots_both", "prots_solo_h", "prots_solo_f",
	"go_overlap", "go_union", "mean_jaccard",
	"go_unicos_h", "go_unicos_f",
}

// Fixed4 renders a float with exactly four decimals.
type Fixed4 float64

func (f Fixed4) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(f), 'f', 4, 64), nil
}

type reportRecord struct {
	Species      string `csv:"species"`
	ProtesH      int    `csv:"protes_h"`
	GosTotalesH  int    `csv:"gos_totales_h"`
	IDConGOH     int    `csv:"id_con_go_h"`
	IDSinGOH     int    `csv:"id_sin_go_h"`
	GosPorGenH   Fixed4 `csv:"gos_por_gen_h"`
	ProtesF      int    `csv:"protes_f"`
	GosTotalesF  int    `csv:"gos_totales_f"`
	IDConGOF     int    `csv:"id_con_go_f"`
	IDSinGOF     int    `csv:"id_sin_go_f"`
	GosPorGenF   Fixed4 `csv:"gos_por_gen_f"`
	ProtsBoth    int    `csv:"prots_both"`
	ProtsSoloH   int    `csv:"prots_solo_h"`
	ProtsSoloF   int    `csv:"prots_solo_f"`
	GOOverlap    int    `csv:"go_overlap"`
	GOUnion      int    `csv:"go_union"`
	MeanJaccard  Fixed4 `csv:"mean_jaccard"`
	GOUnicosH    int    `csv:"go_unicos_h"`
	GOUnicosF    int    `csv:"go_unicos_f"`
}

func recordOf(r stats.Row) reportRecord {
	return reportRecord{
		Species:     r.Species,
		ProtesH:     r.H.Proteins,
		GosTotalesH: r.H.TotalGO,
		IDConGOH:    r.H.Annotated,
		IDSinGOH:    r.H.Unannotated,
		GosPorGenH:  Fixed4(r.H.MeanGOPerProtein),
		ProtesF:     r.F.Proteins,
		GosTotalesF: r.F.TotalGO,
		IDConGOF:    r.F.Annotated,
		IDSinGOF:    r.F.Unannotated,
		GosPorGenF:  Fixed4(r.F.MeanGOPerProtein),
		ProtsBoth:   r.Overlap.Both,
		ProtsSoloH:  r.Overlap.OnlyH,
		ProtsSoloF:  r.Overlap.OnlyF,
		GOOverlap:   r.Overlap.IntersectionSum,
		GOUnion:     r.Overlap.UnionSum,
		MeanJaccard: Fixed4(r.Overlap.MeanJaccard),
		GOUnicosH:   r.Overlap.UniqueHSum,
		GOUnicosF:   r.Overlap.UniqueFSum,
	}
}

func newTSVWriter(out io.Writer) *gocsv.SafeCSVWriter {
	cw := csv.NewWriter(out)
	cw.Comma = '\t'
	return gocsv.NewSafeCSVWriter(cw)
}

// WriteReport writes rows (header first when header is set) in one call.
func WriteReport(out io.Writer, rows []stats.Row, header bool) error {
	recs := make([]reportRecord, len(rows))
	for i, r := range rows {
		recs[i] = recordOf(r)
	}
	cw := newTSVWriter(out)
	if header {
		return gocsv.MarshalCSV(recs, cw)
	}
	return gocsv.MarshalCSVWithoutHeaders(recs, cw)
}

// StartReportWriter spins up a writer goroutine that appends one report line
// per received row, in arrival order. The error channel yields once, after
// the input channel is closed.
func StartReportWriter(out io.Writer, header bool, bufSize int) (chan<- stats.Row, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan stats.Row, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		cw := newTSVWriter(out)
		if header {
			if werr := cw.Write(ReportColumns); werr != nil {
				err = werr
			}
		}
		one := make([]reportRecord, 1)
		for r := range in {
			if err != nil {
				continue // drain so senders never block
			}
			one[0] = recordOf(r)
			if werr := gocsv.MarshalCSVWithoutHeaders(one, cw); werr != nil {
				err = fmt.Errorf("write row %s: %w", r.Species, werr)
			}
		}
		if err == nil {
			cw.Flush()
			err = cw.Error()
		}
		errCh <- err
	}()

	return in, errCh
}
