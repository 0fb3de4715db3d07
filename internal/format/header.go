package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/msbkit/internal/buf"
)

// Header captures the container header. Raw keeps the exact bytes so the
// encoder can emit them unchanged.
type Header struct {
	Version   uint32
	Size      uint32
	BigEndian bool
	Unicode   bool
	Raw       []byte
}

// ParseHeader validates the fixed container header at the start of b.
// Only little-endian unicode files are supported.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("msb header: %w (have %d, need %d)", ErrTruncated, len(b), HeaderSize)
	}
	if !bytes.Equal(b[:len(MSBSignature)], MSBSignature) {
		return Header{}, fmt.Errorf("msb header: %w", ErrSignatureMismatch)
	}
	h := Header{
		Version:   buf.U32LE(b[HeaderVersionOffset:]),
		Size:      buf.U32LE(b[HeaderSizeOffset:]),
		BigEndian: b[HeaderBigEndianOffset] != 0,
		Unicode:   b[HeaderUnicodeOffset] != 0,
		Raw:       b[:HeaderSize],
	}
	if h.Version != HeaderVersion {
		return Header{}, fmt.Errorf("msb header: version %d: %w", h.Version, ErrUnsupported)
	}
	if h.Size != HeaderSize {
		return Header{}, fmt.Errorf("msb header: header size 0x%x: %w", h.Size, ErrUnsupported)
	}
	if h.BigEndian {
		return Header{}, fmt.Errorf("msb header: big-endian container: %w", ErrUnsupported)
	}
	if !h.Unicode {
		return Header{}, fmt.Errorf("msb header: non-unicode container: %w", ErrUnsupported)
	}
	return h, nil
}

// NewHeader returns the canonical header bytes for a new container.
func NewHeader() []byte {
	b := make([]byte, HeaderSize)
	copy(b, MSBSignature)
	PutU32(b, HeaderVersionOffset, HeaderVersion)
	PutU32(b, HeaderSizeOffset, HeaderSize)
	b[HeaderUnicodeOffset] = 1
	b[HeaderPadOffset] = 0xFF
	return b
}
