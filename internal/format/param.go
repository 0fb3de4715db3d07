package format

import (
	"fmt"

	"github.com/joshuapare/msbkit/internal/buf"
)

// Param is one decoded parameter section. NameRaw and Entries alias the
// source buffer and span every byte up to the next structure, padding
// included, so re-emitting them reproduces the original layout.
type Param struct {
	Offset  int
	Version int32
	Name    string
	NameRaw []byte
	Entries [][]byte
	// Next is the absolute offset of the following section, 0 for the last.
	Next int
}

// DecodeParam decodes the section whose header starts at off.
//
// The name must follow the header directly, entries must be non-empty,
// ascending and contiguous, and everything must end at the next section
// (or at the end of b for the last one).
func DecodeParam(b []byte, off int) (Param, error) {
	if !buf.Has(b, off, ParamFixedSize) {
		return Param{}, fmt.Errorf("param at 0x%x: %w", off, ErrTruncated)
	}
	version := ReadI32(b, off+ParamVersionOffset)
	offCount := ReadI32(b, off+ParamOffsetCountOffset)
	if offCount < 1 {
		return Param{}, fmt.Errorf("param at 0x%x: offset count %d: %w", off, offCount, ErrLayout)
	}
	n := int(offCount) - 1
	if n > MaxEntries {
		return Param{}, fmt.Errorf("param at 0x%x: entry count %d exceeds limit %d: %w",
			off, n, MaxEntries, ErrSanityLimit)
	}
	headerEnd, err := buf.CheckListBounds(len(b), off+ParamEntriesOffset, n+1, OffsetFieldSize)
	if err != nil {
		return Param{}, fmt.Errorf("param at 0x%x: offset table: %w: %v", off, ErrTruncated, err)
	}

	if nameOff := ReadI64(b, off+ParamNameOffset); nameOff != int64(headerEnd) {
		return Param{}, fmt.Errorf("param at 0x%x: name at 0x%x, want 0x%x: %w",
			off, nameOff, headerEnd, ErrLayout)
	}

	nextField := ReadI64(b, off+ParamEntriesOffset+n*OffsetFieldSize)
	sectionEnd := len(b)
	next := 0
	if nextField != 0 {
		v, ok := buf.OffsetToInt(nextField, len(b))
		if !ok || v <= headerEnd {
			return Param{}, fmt.Errorf("param at 0x%x: next section 0x%x: %w", off, nextField, ErrLayout)
		}
		next, sectionEnd = v, v
	}

	starts := make([]int, n)
	prev := headerEnd
	for i := range starts {
		raw := ReadI64(b, off+ParamEntriesOffset+i*OffsetFieldSize)
		v, ok := buf.OffsetToInt(raw, sectionEnd)
		if !ok || v <= prev {
			return Param{}, fmt.Errorf("param at 0x%x: entry %d at 0x%x: %w", off, i, raw, ErrLayout)
		}
		starts[i] = v
		prev = v
	}
	if n > 0 && starts[n-1] >= sectionEnd {
		return Param{}, fmt.Errorf("param at 0x%x: entry %d is empty: %w", off, n-1, ErrLayout)
	}

	nameEnd := sectionEnd
	if n > 0 {
		nameEnd = starts[0]
	}
	nameRaw := b[headerEnd:nameEnd]
	name, _, err := DecodeText(nameRaw, 0)
	if err != nil {
		return Param{}, fmt.Errorf("param at 0x%x: name: %w", off, err)
	}

	entries := make([][]byte, n)
	for i, start := range starts {
		end := sectionEnd
		if i+1 < n {
			end = starts[i+1]
		}
		entries[i] = b[start:end]
	}

	return Param{
		Offset:  off,
		Version: version,
		Name:    name,
		NameRaw: nameRaw,
		Entries: entries,
		Next:    next,
	}, nil
}

// AppendParam lays out a section at the end of dst and returns the extended
// slice. Offsets are recomputed from the position in dst; when last is false
// the next-section offset points directly past the final entry.
func AppendParam(dst []byte, version int32, nameRaw []byte, entries [][]byte, last bool) []byte {
	off := len(dst)
	n := len(entries)
	hdr := make([]byte, ParamHeaderSize(n))
	PutI32(hdr, ParamVersionOffset, version)
	PutI32(hdr, ParamOffsetCountOffset, int32(n+1))

	cur := off + len(hdr)
	PutI64(hdr, ParamNameOffset, int64(cur))
	cur += len(nameRaw)
	for i, e := range entries {
		PutI64(hdr, ParamEntriesOffset+i*OffsetFieldSize, int64(cur))
		cur += len(e)
	}
	if !last {
		PutI64(hdr, ParamEntriesOffset+n*OffsetFieldSize, int64(cur))
	}

	dst = append(dst, hdr...)
	dst = append(dst, nameRaw...)
	for _, e := range entries {
		dst = append(dst, e...)
	}
	return dst
}

// EncodeParamName returns the canonical name region: the terminated
// UTF-16LE name padded to 8 bytes.
func EncodeParamName(name string) ([]byte, error) {
	raw, err := EncodeText(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, Align8(len(raw)))
	copy(out, raw)
	return out, nil
}
