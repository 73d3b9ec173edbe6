// Package manifest loads the master index: one species per line with the
// paths of its homology and prediction annotation tables.
//
//	species<TAB>homology_path<TAB>prediction_path
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Entry is one usable index row.
type Entry struct {
	Index          int // position among usable rows, 0-based
	Line           int
	Species        string
	HomologyPath   string
	PredictionPath string
}

// ConfigError means the index itself cannot be read. It is fatal.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string { return fmt.Sprintf("master index %s: %v", e.Path, e.Err) }
func (e *ConfigError) Unwrap() error { return e.Err }

// RowFormatError describes a skipped index row.
type RowFormatError struct {
	Source string
	Line   int
	Text   string
	Reason string
}

func (e RowFormatError) Error() string {
	return fmt.Sprintf("%s:%d %s: %q", e.Source, e.Line, e.Reason, e.Text)
}

// Options controls path handling.
type Options struct {
	// RelativeToIndex resolves relative annotation paths against the index
	// file's directory instead of the working directory.
	RelativeToIndex bool
}

// Load reads the index at path. A missing or unreadable index is a
// *ConfigError; malformed rows are returned separately and skipped.
func Load(path string, opt Options) ([]Entry, []RowFormatError, error) {
	fh, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fs.ErrNotExist
		}
		return nil, nil, &ConfigError{Path: path, Err: err}
	}
	defer func() { _ = fh.Close() }()

	base := ""
	if opt.RelativeToIndex {
		base = filepath.Dir(path)
	}
	entries, bad, err := read(fh, path, base)
	if err != nil {
		return nil, bad, &ConfigError{Path: path, Err: err}
	}
	return entries, bad, nil
}

// LoadReader parses an index from r; name is used in row errors. Paths are
// taken as written.
func LoadReader(r io.Reader, name string) ([]Entry, []RowFormatError, error) {
	return read(r, name, "")
}

func read(r io.Reader, name, base string) ([]Entry, []RowFormatError, error) {
	var (
		list []Entry
		bad  []RowFormatError
	)
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) < 3 {
			bad = append(bad, RowFormatError{Source: name, Line: ln, Text: line,
				Reason: "expected species<TAB>homology<TAB>prediction"})
			continue
		}
		e := Entry{
			Index:          len(list),
			Line:           ln,
			Species:        strings.TrimSpace(f[0]),
			HomologyPath:   strings.TrimSpace(f[1]),
			PredictionPath: strings.TrimSpace(f[2]),
		}
		if e.Species == "" || e.HomologyPath == "" || e.PredictionPath == "" {
			bad = append(bad, RowFormatError{Source: name, Line: ln, Text: line,
				Reason: "missing species or path"})
			continue
		}
		e.HomologyPath = resolve(base, e.HomologyPath)
		e.PredictionPath = resolve(base, e.PredictionPath)
		list = append(list, e)
	}
	if err := sc.Err(); err != nil {
		return nil, bad, err
	}
	return list, bad, nil
}

func resolve(base, p string) string {
	if base == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
