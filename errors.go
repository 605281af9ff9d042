package ijson

import "fmt"

// JSONError reports a structural or lexical problem detected without
// needing any more input: a bad byte, a bad escape sequence, an invalid
// UTF-8 sequence, or a grammar violation such as a missing comma.
type JSONError struct {
	msg  string
	pos  int64 // byte offset into the overall input
	line int
	col  int

	err error // wrapped cause, if any
}

func newJSONError(msg string, pos int64, line, col int) *JSONError {
	return &JSONError{msg: msg, pos: pos, line: line, col: col}
}

func wrapJSONError(msg string, pos int64, line, col int, err error) *JSONError {
	return &JSONError{msg: msg, pos: pos, line: line, col: col, err: err}
}

func (e *JSONError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("ijson: %s at line %d, col %d (offset %d): %v", e.msg, e.line, e.col, e.pos, e.err)
	}
	return fmt.Sprintf("ijson: %s at line %d, col %d (offset %d)", e.msg, e.line, e.col, e.pos)
}

func (e *JSONError) Unwrap() error {
	return e.err
}

// Offset returns the byte offset of the offending input.
func (e *JSONError) Offset() int64 {
	return e.pos
}

// IncompleteJSONError is a JSONError raised because the input ended
// while the parser was still expecting more: inside a literal, inside
// an open container, or before any top-level value had been seen.
//
// IncompleteJSONError always unwraps to a *JSONError, so callers that
// only care about "is this JSON invalid" can match on *JSONError and
// callers that care about "could more input fix this" can additionally
// check for *IncompleteJSONError.
type IncompleteJSONError struct {
	*JSONError
}

func newIncompleteJSONError(msg string, pos int64, line, col int) *IncompleteJSONError {
	return &IncompleteJSONError{JSONError: newJSONError(msg, pos, line, col)}
}

func (e *IncompleteJSONError) Error() string {
	return "ijson: incomplete: " + e.JSONError.Error()
}

// Unwrap returns the embedded *JSONError.
func (e *IncompleteJSONError) Unwrap() error {
	return e.JSONError
}

var (
	// ErrBadBufSize is returned by the constructors when Config.BufSize
	// is negative (zero selects the default size).
	ErrBadBufSize = fmt.Errorf("ijson: buf_size must be a positive integer")

	// ErrMultipleValuesUnsupported is reserved for backends that cannot
	// support Config.MultipleValues. Every adapter in this module
	// supports it, so no constructor here actually returns this error;
	// it is kept for parity with the capability declared in spec.md §6.
	ErrMultipleValuesUnsupported = fmt.Errorf("ijson: this backend does not support multiple_values")
)
