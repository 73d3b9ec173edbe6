package annot

import (
	"errors"
	"fmt"
)

var (
	ErrMissingInput = errors.New("annotation file does not exist")
	ErrEmptyInput   = errors.New("annotation file is empty")
)

// InputError reports an annotation file that cannot be used at all.
// It wraps ErrMissingInput, ErrEmptyInput or the underlying stat error.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *InputError) Unwrap() error { return e.Err }

// MalformedRowError is returned in strict mode for a data line that carries
// no protein identifier.
type MalformedRowError struct {
	Line int
	Text string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("line %d: no protein identifier in %q", e.Line, e.Text)
}

// Diagnostic describes a skipped line.
type Diagnostic struct {
	Line   int
	Reason string
}

func (d Diagnostic) String() string { return fmt.Sprintf("line %d: %s", d.Line, d.Reason) }
