package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrLayout indicates offsets that overlap, run backwards or leave gaps.
	ErrLayout = errors.New("format: invalid layout")
	// ErrBadText indicates text that cannot be represented in the container encoding.
	ErrBadText = errors.New("format: invalid text")
	// ErrSanityLimit indicates a count or length beyond what the format allows.
	ErrSanityLimit = errors.New("format: sanity limit exceeded")
	// ErrUnsupported indicates a recognized but unsupported variant.
	ErrUnsupported = errors.New("format: unsupported feature")
	// ErrNotFound indicates a required section was missing.
	ErrNotFound = errors.New("format: not found")
)
