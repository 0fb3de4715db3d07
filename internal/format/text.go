package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/msbkit/internal/buf"
)

// MSB3 stores all text as NUL-terminated UTF-16LE without a byte order mark.
var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

const (
	highSurrogateStart = 0xD800
	highSurrogateEnd   = 0xDBFF
	lowSurrogateStart  = 0xDC00
	lowSurrogateEnd    = 0xDFFF
	bmpMax             = 0xFFFF
)

// UTF16Len returns the number of UTF-16 code units needed for s.
// s must be valid UTF-8.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > bmpMax {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// CheckText reports whether s can be stored as a text field: valid UTF-8,
// no embedded NUL (which would end the string early on disk) and at most
// MaxTextUnits code units.
func CheckText(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("%w: not valid UTF-8", ErrBadText)
	}
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: embedded NUL", ErrBadText)
	}
	if n := UTF16Len(s); n > MaxTextUnits {
		return fmt.Errorf("text length %d exceeds limit %d: %w", n, MaxTextUnits, ErrSanityLimit)
	}
	return nil
}

// EncodeText returns s as UTF-16LE followed by a two-byte terminator.
func EncodeText(s string) ([]byte, error) {
	if err := CheckText(s); err != nil {
		return nil, err
	}
	out, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadText, err)
	}
	return append(out, 0, 0), nil
}

// DecodeText reads a NUL-terminated UTF-16LE string starting at off and
// returns it with the number of bytes consumed, terminator included.
// A missing terminator, an unpaired surrogate or an over-long string is
// rejected rather than truncated.
func DecodeText(b []byte, off int) (string, int, error) {
	if off < 0 || off > len(b) {
		return "", 0, fmt.Errorf("text at 0x%x: %w", off, ErrTruncated)
	}
	end := -1
	for i := off; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			end = i
			break
		}
	}
	if end < 0 {
		return "", 0, fmt.Errorf("text at 0x%x: missing terminator: %w", off, ErrTruncated)
	}
	raw := b[off:end]
	if units := len(raw) / 2; units > MaxTextUnits {
		return "", 0, fmt.Errorf("text at 0x%x: length %d exceeds limit %d: %w",
			off, units, MaxTextUnits, ErrSanityLimit)
	}
	if err := checkSurrogates(raw); err != nil {
		return "", 0, fmt.Errorf("text at 0x%x: %w", off, err)
	}
	s, err := utf16le.NewDecoder().Bytes(raw)
	if err != nil {
		return "", 0, fmt.Errorf("text at 0x%x: %w: %v", off, ErrBadText, err)
	}
	return string(s), len(raw) + 2, nil
}

// checkSurrogates rejects unpaired surrogates, which the x/text decoder
// would otherwise replace with U+FFFD.
func checkSurrogates(raw []byte) error {
	for i := 0; i+1 < len(raw); i += 2 {
		u := buf.U16LE(raw[i:])
		switch {
		case u >= highSurrogateStart && u <= highSurrogateEnd:
			if i+3 >= len(raw) {
				return fmt.Errorf("%w: unpaired high surrogate 0x%04x", ErrBadText, u)
			}
			lo := buf.U16LE(raw[i+2:])
			if lo < lowSurrogateStart || lo > lowSurrogateEnd {
				return fmt.Errorf("%w: unpaired high surrogate 0x%04x", ErrBadText, u)
			}
			i += 2
		case u >= lowSurrogateStart && u <= lowSurrogateEnd:
			return fmt.Errorf("%w: unpaired low surrogate 0x%04x", ErrBadText, u)
		}
	}
	return nil
}
