package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goagree/internal/writers"
)

type fixture struct {
	dir, index, report, venn string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	w := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	aaH := w("Aa_bb.homology.tsv",
		"Protein-Accession\tDescription\tLength\tGO\n"+
			"P1\tkinase\t120\tGO:0000001,GO:0000002\n"+
			"P2\thypothetical protein\t80\t\n"+
			"P3\ttransporter\t300\tGO:0000002\n")
	aaF := w("Aa_bb.prediction.tsv",
		"P1\tGO:0000002\t0.90\n"+
			"P2\tGO:0000003\t0.40\n"+
			"P4\tGO:0000004\t0.75\n")
	ccH := w("Cc_dd.homology.tsv", "Q1\tx\tGO:0000010\n")
	ccF := w("Cc_dd.prediction.tsv", "Q1\tGO:0000010;GO:0000011\n")
	empty := w("empty.tsv", "")

	idx := w("species.tsv",
		"# species\thomology\tprediction\n"+
			"Aa_bb\t"+aaH+"\t"+aaF+"\n"+
			"broken row\n"+
			"Ee_ff\t"+filepath.Join(dir, "missing.tsv")+"\t"+aaF+"\n"+
			"Gg_hh\t"+aaH+"\t"+empty+"\n"+
			"Cc_dd\t"+ccH+"\t"+ccF+"\n")
	return fixture{dir: dir, index: idx, report: filepath.Join(dir, "report.tsv"), venn: filepath.Join(dir, "venn.json")}
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := RunContext(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunEndToEnd(t *testing.T) {
	fx := newFixture(t)
	code, _, stderr := run(t, "-i", fx.index, "-o", fx.report, "--venn", fx.venn, "-t", "3")
	require.Equal(t, ExitOK, code, stderr)

	data, err := os.ReadFile(fx.report)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Join(writers.ReportColumns, "\t"), lines[0])
	assert.Equal(t, "Aa_bb\t3\t3\t2\t1\t1.0000\t3\t3\t3\t0\t1.0000\t2\t1\t1\t1\t5\t0.1250\t2\t2", lines[1])
	assert.Equal(t, "Cc_dd\t1\t1\t1\t0\t1.0000\t1\t2\t1\t0\t2.0000\t1\t0\t0\t1\t2\t0.5000\t0\t1", lines[2])
	// Totals: jaccard (0.5+0+0+0+0.5)/5.
	assert.Equal(t, "TOTAL\t4\t4\t3\t1\t1.0000\t4\t5\t4\t0\t1.2500\t3\t1\t1\t2\t7\t0.2000\t2\t3", lines[3])

	assert.Contains(t, stderr, "skipping index row")
	assert.Contains(t, stderr, "skipping species Ee_ff")
	assert.Contains(t, stderr, "skipping species Gg_hh")

	var venn map[string]int
	raw, err := os.ReadFile(fx.venn)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &venn))
	assert.Equal(t, map[string]int{"only_h": 2, "only_f": 3, "both": 2}, venn)
}

func TestRunTwiceAppendsWithoutSecondHeader(t *testing.T) {
	fx := newFixture(t)
	code, _, _ := run(t, "-q", "-i", fx.index, "-o", fx.report)
	require.Equal(t, ExitOK, code)
	code, _, stderr := run(t, "-q", "-i", fx.index, "-o", fx.report)
	require.Equal(t, ExitOK, code)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(fx.report)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "species\tprotes_h"))
	assert.Equal(t, 2, strings.Count(string(data), "\nTOTAL\t"))
}

func TestRunStdoutReport(t *testing.T) {
	fx := newFixture(t)
	code, stdout, _ := run(t, "-q", "-o", "-", fx.index)
	require.Equal(t, ExitOK, code)
	assert.True(t, strings.HasPrefix(stdout, "species\t"))
	assert.Contains(t, stdout, "\nTOTAL\t")
}

func TestRunMissingIndex(t *testing.T) {
	code, _, stderr := run(t, "-i", filepath.Join(t.TempDir(), "nope.tsv"), "-o", "-")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "master index")
}

func TestRunUnwritableReport(t *testing.T) {
	fx := newFixture(t)
	code, _, _ := run(t, "-i", fx.index, "-o", filepath.Join(fx.dir, "no", "such", "dir.tsv"))
	assert.Equal(t, ExitIO, code)
}

func TestRunNoUsableSpecies(t *testing.T) {
	dir := t.TempDir()
	idx := filepath.Join(dir, "species.tsv")
	require.NoError(t, os.WriteFile(idx, []byte("Aa_bb\tmissing.tsv\talso-missing.tsv\n"), 0o644))
	code, stdout, stderr := run(t, "-i", idx, "-o", "-")
	require.Equal(t, ExitOK, code)
	assert.Contains(t, stderr, "no species could be compared")
	assert.Contains(t, stdout, "TOTAL\t0\t0\t0\t0\t0.0000")
}

func TestRunCanceled(t *testing.T) {
	fx := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var stdout, stderr bytes.Buffer
	code := RunContext(ctx, []string{"-i", fx.index, "-o", fx.report}, &stdout, &stderr)
	assert.Equal(t, ExitCanceled, code)
}

func TestRunHelpVersionExamples(t *testing.T) {
	code, stdout, _ := run(t, "-h")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "--index")

	code, stdout, _ = run(t, "--version")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "goagree version")

	code, stdout, _ = run(t, "--examples")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, stdout, "quickstart")

	code, _, stderr := run(t, "--threads", "-2", "x.tsv")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, stderr, "--threads")
}
