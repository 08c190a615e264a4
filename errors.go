package myjpeg

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies a failure so callers can decide policy without
// parsing strings. It mirrors the fail-fast-vs-best-effort split the codec
// applies internally: bad input/container/table shapes always fail fast,
// while a corrupt entropy-coded payload is recovered from per component.
type ErrorKind int

const (
	// InvalidInput marks a malformed argument to an exported function:
	// wrong buffer length, an out-of-range quality, zero-sized image.
	InvalidInput ErrorKind = iota
	// InvalidContainer marks a malformed MYJPEG byte stream: bad magic,
	// truncated length prefix, or a header that doesn't parse as JSON.
	InvalidContainer
	// InvalidTable marks a structurally invalid quantization or Huffman
	// table recovered from a container header (wrong length, bits that
	// don't sum to a valid canonical code set, an out-of-range value).
	InvalidTable
	// CorruptBitstream marks an entropy-coded payload that ran out of
	// bits before its data unit count was satisfied. Decoding continues
	// with the remaining components rather than aborting the call.
	CorruptBitstream
	// NumericRange marks an internal value escaping its expected range
	// (a VLI category above 15, a coefficient a quantization step can't
	// represent) that could not have come from well-formed input.
	NumericRange
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InvalidContainer:
		return "InvalidContainer"
	case InvalidTable:
		return "InvalidTable"
	case CorruptBitstream:
		return "CorruptBitstream"
	case NumericRange:
		return "NumericRange"
	default:
		return "Unknown"
	}
}

// Error is the error type every exported myjpeg function returns. Op names
// the failing operation (e.g. "Encode", "unmarshalContainer") and Err
// carries the underlying cause, wrapped with a stack trace by pkg/errors so
// logs retain where the failure originated.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("myjpeg: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind ErrorKind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: errors.WithStack(err)}
}

func errorf(kind ErrorKind, op, format string, args ...any) *Error {
	return newError(kind, op, fmt.Errorf(format, args...))
}
