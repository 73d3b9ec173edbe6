package writers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// OutputWriteError means the report destination cannot be used.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string { return fmt.Sprintf("report %s: %v", e.Path, e.Err) }
func (e *OutputWriteError) Unwrap() error { return e.Err }

// ErrForeignHeader is returned when an existing, non-empty destination does
// not start with the report header.
var ErrForeignHeader = errors.New("existing file does not start with the report header")

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// OpenReport opens path for appending report rows. needHeader is true when
// the destination is new or empty, so repeated runs write the header once.
// "-" writes to stdout and always needs a header.
func OpenReport(path string, stdout io.Writer) (w io.WriteCloser, needHeader bool, err error) {
	if path == "-" || path == "" {
		return nopWriteCloser{stdout}, true, nil
	}
	fh, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, false, &OutputWriteError{Path: path, Err: err}
	}
	st, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, false, &OutputWriteError{Path: path, Err: err}
	}
	if st.Size() == 0 {
		return fh, true, nil
	}
	if err := checkExisting(fh, st.Size()); err != nil {
		_ = fh.Close()
		return nil, false, &OutputWriteError{Path: path, Err: err}
	}
	return fh, false, nil
}

// checkExisting verifies the header line and terminates a trailing partial
// line so appended rows start on their own line.
func checkExisting(fh *os.File, size int64) error {
	first, err := bufio.NewReader(io.NewSectionReader(fh, 0, size)).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	if strings.TrimRight(first, "\r\n") != strings.Join(ReportColumns, "\t") {
		return ErrForeignHeader
	}
	var last [1]byte
	if _, err := fh.ReadAt(last[:], size-1); err != nil {
		return err
	}
	if last[0] != '\n' {
		if _, err := fh.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}
