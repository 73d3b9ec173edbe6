package annot

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const homologyTable = "# generated by the description tool\n" +
	"Protein-Accession\tDescription\tQuality\tGO\n" +
	"P1\tkinase\t***\tGO:0000001, GO:0000002\n" +
	"P2\tunknown protein\t*\t\n" +
	"\n" +
	"P3\ttransporter\t**\tGO:0000002\n"

func TestParseHomologyLayout(t *testing.T) {
	m, diags, err := Parse(strings.NewReader(homologyTable), Options{})
	require.NoError(t, err)
	assert.Empty(t, diags)
	require.Len(t, m, 3)
	assert.Equal(t, []string{"GO:0000001", "GO:0000002"}, m["P1"].Sorted())
	assert.Equal(t, 0, m["P2"].Len())
	assert.Equal(t, []string{"GO:0000002"}, m["P3"].Sorted())
}

func TestParsePredictionLayout(t *testing.T) {
	// GO ids in a middle column, followed by scores.
	in := "P1\tGO:0000002\t0.91\n" +
		"P2\tGO:0000003;GO:0000003\t0.55\tbiological_process\n" +
		"P4\tscore=0.4 GO:0000004\n"
	m, _, err := Parse(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"GO:0000002"}, m["P1"].Sorted())
	assert.Equal(t, []string{"GO:0000003"}, m["P2"].Sorted())
	assert.Equal(t, []string{"GO:0000004"}, m["P4"].Sorted())
}

func TestParseDuplicateLastWins(t *testing.T) {
	in := "P1\tGO:0000001\tGO:0000002\n" +
		"P1\tGO:0000003\n"
	m, _, err := Parse(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"GO:0000003"}, m["P1"].Sorted())
}

func TestParseDuplicateMerge(t *testing.T) {
	in := "P1\tGO:0000001\n" +
		"P1\tGO:0000003\n"
	m, _, err := Parse(strings.NewReader(in), Options{Duplicates: DuplicatesMerge})
	require.NoError(t, err)
	assert.Equal(t, []string{"GO:0000001", "GO:0000003"}, m["P1"].Sorted())
}

func TestParseUnknownDuplicatePolicy(t *testing.T) {
	_, _, err := Parse(strings.NewReader("P1\n"), Options{Duplicates: "first"})
	assert.Error(t, err)
}

func TestParseEmptyProteinID(t *testing.T) {
	in := "P1\tGO:0000001\n" +
		"  \tGO:0000002\n"
	m, diags, err := Parse(strings.NewReader(in), Options{})
	require.NoError(t, err)
	assert.Len(t, m, 1)
	require.Len(t, diags, 1)
	assert.Equal(t, 2, diags[0].Line)

	_, _, err = Parse(strings.NewReader(in), Options{Strict: true})
	var mre *MalformedRowError
	require.True(t, errors.As(err, &mre), "want MalformedRowError, got %v", err)
	assert.Equal(t, 2, mre.Line)
}

func TestParseCustomHeaderToken(t *testing.T) {
	in := "query_id\tgo_terms\n" +
		"Protein-Accession\tGO:0000001\n"
	m, _, err := Parse(strings.NewReader(in), Options{HeaderTokens: []string{"query_id"}})
	require.NoError(t, err)
	// With a custom token list the default token is a regular protein id.
	assert.Len(t, m, 1)
	assert.Contains(t, m, "Protein-Accession")
}

func TestParseCRLF(t *testing.T) {
	m, _, err := Parse(strings.NewReader("P1\tGO:0000001\r\nP2\tGO:0000002\r\n"), Options{})
	require.NoError(t, err)
	assert.True(t, m["P1"].Has("GO:0000001"))
	assert.True(t, m["P2"].Has("GO:0000002"))
}

func TestParseFileGzip(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "pred.tsv.gz")
	fh, err := os.Create(fn)
	require.NoError(t, err)
	zw := gzip.NewWriter(fh)
	_, err = zw.Write([]byte(homologyTable))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())

	m, _, err := ParseFile(fn, Options{})
	require.NoError(t, err)
	assert.Len(t, m, 3)
}

func TestCheckInput(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.tsv")
	full := filepath.Join(dir, "full.tsv")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	require.NoError(t, os.WriteFile(full, []byte("P1\n"), 0o644))

	assert.NoError(t, CheckInput(full))
	assert.ErrorIs(t, CheckInput(empty), ErrEmptyInput)
	assert.ErrorIs(t, CheckInput(filepath.Join(dir, "nope.tsv")), ErrMissingInput)

	var ie *InputError
	require.True(t, errors.As(CheckInput(dir), &ie))
	assert.Equal(t, dir, ie.Path)
}
