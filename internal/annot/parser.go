package annot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"goagree/internal/goterm"
)

// DefaultHeaderToken marks the header line written by the homology
// description tool.
const DefaultHeaderToken = "Protein-Accession"

// Duplicate-row policies.
const (
	DuplicatesLast  = "last"
	DuplicatesMerge = "merge"
)

const maxLineBytes = 1 << 20

// Mapping maps a protein identifier to its GO terms for one source of one
// species. Build a new one per species; never reuse across species.
type Mapping map[string]goterm.Set

// Options controls parsing.
type Options struct {
	// HeaderTokens lists first-column values that identify a header line.
	// Nil means []string{DefaultHeaderToken}.
	HeaderTokens []string
	// Duplicates is DuplicatesLast (default) or DuplicatesMerge.
	Duplicates string
	// Strict turns a data line without a protein id into a MalformedRowError.
	Strict bool
}

func (o Options) isHeader(first string) bool {
	toks := o.HeaderTokens
	if toks == nil {
		toks = []string{DefaultHeaderToken}
	}
	for _, t := range toks {
		if first == t {
			return true
		}
	}
	return false
}

// ValidDuplicates reports whether p names a known duplicate policy.
func ValidDuplicates(p string) bool {
	return p == "" || p == DuplicatesLast || p == DuplicatesMerge
}

// Parse reads one annotation table. Skipped lines are reported as
// diagnostics; the returned error is an I/O error or, in strict mode, a
// *MalformedRowError.
func Parse(r io.Reader, opt Options) (Mapping, []Diagnostic, error) {
	if !ValidDuplicates(opt.Duplicates) {
		return nil, nil, fmt.Errorf("unknown duplicate policy %q", opt.Duplicates)
	}
	m := make(Mapping)
	var diags []Diagnostic

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimRight(sc.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed[0] == '#' {
			continue
		}
		cols := strings.Split(line, "\t")
		id := strings.TrimSpace(cols[0])
		if opt.isHeader(id) {
			continue
		}
		if id == "" {
			if opt.Strict {
				return nil, diags, &MalformedRowError{Line: ln, Text: line}
			}
			diags = append(diags, Diagnostic{Line: ln, Reason: "empty protein identifier"})
			continue
		}
		terms := goterm.Extract(cols[1:]...)
		if prev, dup := m[id]; dup && opt.Duplicates == DuplicatesMerge {
			prev.Merge(terms)
			continue
		}
		m[id] = terms
	}
	if err := sc.Err(); err != nil {
		return nil, diags, fmt.Errorf("line %d: %w", ln+1, err)
	}
	return m, diags, nil
}

// ParseFile opens path (see Open) and parses it.
func ParseFile(path string, opt Options) (Mapping, []Diagnostic, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = rc.Close() }()
	m, diags, err := Parse(rc, opt)
	if err != nil {
		return nil, diags, fmt.Errorf("%s: %w", path, err)
	}
	return m, diags, nil
}
