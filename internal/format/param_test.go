package format

import (
	"bytes"
	"errors"
	"testing"
)

func mustParamName(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := EncodeParamName(name)
	if err != nil {
		t.Fatalf("EncodeParamName(%q): %v", name, err)
	}
	return raw
}

func TestAppendDecodeParam(t *testing.T) {
	name := mustParamName(t, "MODEL_PARAM_ST")
	entries := [][]byte{
		bytes.Repeat([]byte{0xA1}, 16),
		bytes.Repeat([]byte{0xB2}, 24),
	}
	b := AppendParam(NewHeader(), 3, name, entries, true)

	// header(0x10) + param header(0x10 + 3*8) + name(32) + 16 + 24
	if want := 0x10 + 0x28 + 32 + 40; len(b) != want {
		t.Fatalf("len = %d, want %d", len(b), want)
	}

	p, err := DecodeParam(b, HeaderSize)
	if err != nil {
		t.Fatalf("DecodeParam: %v", err)
	}
	if p.Name != "MODEL_PARAM_ST" || p.Version != 3 || p.Next != 0 {
		t.Fatalf("unexpected param: name=%q version=%d next=%d", p.Name, p.Version, p.Next)
	}
	if len(p.Entries) != 2 || !bytes.Equal(p.Entries[0], entries[0]) || !bytes.Equal(p.Entries[1], entries[1]) {
		t.Fatalf("entries not preserved: %v", p.Entries)
	}
	if !bytes.Equal(p.NameRaw, name) {
		t.Fatalf("name region not preserved")
	}

	again := AppendParam(NewHeader(), p.Version, p.NameRaw, p.Entries, true)
	if !bytes.Equal(again, b) {
		t.Fatalf("re-layout differs from original")
	}
}

func TestDecodeParamChain(t *testing.T) {
	b := AppendParam(NewHeader(), 3, mustParamName(t, "A"), [][]byte{make([]byte, 8)}, false)
	second := len(b)
	b = AppendParam(b, 3, mustParamName(t, "B"), nil, true)

	p, err := DecodeParam(b, HeaderSize)
	if err != nil {
		t.Fatalf("DecodeParam first: %v", err)
	}
	if p.Next != second {
		t.Fatalf("Next = 0x%x, want 0x%x", p.Next, second)
	}
	q, err := DecodeParam(b, p.Next)
	if err != nil {
		t.Fatalf("DecodeParam second: %v", err)
	}
	if q.Name != "B" || len(q.Entries) != 0 || q.Next != 0 {
		t.Fatalf("unexpected second param: %+v", q)
	}
}

func TestDecodeParamLayoutErrors(t *testing.T) {
	build := func() []byte {
		return AppendParam(NewHeader(), 3, mustParamName(t, "P"),
			[][]byte{make([]byte, 8), make([]byte, 8)}, true)
	}
	entry0 := HeaderSize + ParamEntriesOffset
	entry1 := entry0 + OffsetFieldSize

	tests := []struct {
		name   string
		mutate func([]byte) []byte
		want   error
	}{
		{"truncated header", func(b []byte) []byte { return b[:HeaderSize+8] }, ErrTruncated},
		{"zero offset count", func(b []byte) []byte { PutI32(b, HeaderSize+ParamOffsetCountOffset, 0); return b }, ErrLayout},
		{"huge offset count", func(b []byte) []byte { PutI32(b, HeaderSize+ParamOffsetCountOffset, 1<<20); return b }, ErrSanityLimit},
		{"table past end", func(b []byte) []byte { PutI32(b, HeaderSize+ParamOffsetCountOffset, 100); return b }, ErrTruncated},
		{"name gap", func(b []byte) []byte {
			PutI64(b, HeaderSize+ParamNameOffset, ReadI64(b, HeaderSize+ParamNameOffset)+8)
			return b
		}, ErrLayout},
		{"descending", func(b []byte) []byte {
			PutI64(b, entry1, ReadI64(b, entry0))
			return b
		}, ErrLayout},
		{"entry past end", func(b []byte) []byte { PutI64(b, entry1, int64(len(b)+8)); return b }, ErrLayout},
		{"empty last entry", func(b []byte) []byte { PutI64(b, entry1, int64(len(b))); return b }, ErrLayout},
		{"next backwards", func(b []byte) []byte { PutI64(b, entry1+OffsetFieldSize, HeaderSize); return b }, ErrLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeParam(tt.mutate(build()), HeaderSize)
			if !errors.Is(err, tt.want) {
				t.Fatalf("DecodeParam error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEncodeParamNamePadding(t *testing.T) {
	raw := mustParamName(t, "PARTS_PARAM_ST")
	// 14 units + terminator = 30 bytes, padded to 32
	if len(raw) != 32 {
		t.Fatalf("len = %d, want 32", len(raw))
	}
}
