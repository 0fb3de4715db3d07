package types

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat ErrKind = iota // malformed container bytes or a value that cannot be coerced to its field type
	ErrKindIndex                 // record index outside [0, len)
	ErrKindIO                    // file could not be opened, read or written
	ErrKindState                 // operation invalid for the current state (e.g. nothing loaded)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "format"
	case ErrKindIndex:
		return "index"
	case ErrKindIO:
		return "io"
	case ErrKindState:
		return "state"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, ErrFormat)
// holds for every format error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	// ErrFormat indicates malformed binary input or an uncoercible field value.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "invalid format"}
	// ErrIndex indicates an out-of-range record index.
	ErrIndex = &Error{Kind: ErrKindIndex, Msg: "index out of range"}
	// ErrIO indicates a file access failure.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "i/o failure"}
	// ErrState indicates an operation that needs a loaded document.
	ErrState = &Error{Kind: ErrKindState, Msg: "invalid state"}
)

// FormatError wraps cause as a format error.
func FormatError(msg string, cause error) error {
	return &Error{Kind: ErrKindFormat, Msg: msg, Err: cause}
}

// IOError wraps cause as an i/o error.
func IOError(msg string, cause error) error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: cause}
}

// IndexError reports index i outside [0, n).
func IndexError(i, n int) error {
	return &Error{Kind: ErrKindIndex, Msg: fmt.Sprintf("index %d out of range [0,%d)", i, n)}
}

// StateError reports an operation that is invalid in the current state.
func StateError(msg string) error {
	return &Error{Kind: ErrKindState, Msg: msg}
}
