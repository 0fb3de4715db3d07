package format

import (
	"errors"
	"testing"
)

func sampleEnemy() EnemyEntry {
	return EnemyEntry{
		Name:          "c1100_0000",
		ModelName:     "c1100",
		ThinkParamID:  110000,
		NPCParamID:    110010,
		EventEntityID: 3000800,
		TalkID:        -1,
		CharaInitID:   0,
		Position:      [3]float32{1.5, -2.25, 300},
		Rotation:      [3]float32{0, 180, 0},
	}
}

func TestEncodeDecodeEnemy(t *testing.T) {
	e := sampleEnemy()
	b, err := EncodeEnemy(e)
	if err != nil {
		t.Fatalf("EncodeEnemy: %v", err)
	}
	// 0x40 + (10+1)*2 + (5+1)*2 = 98, aligned to 104
	if len(b) != 104 {
		t.Fatalf("len = %d, want 104", len(b))
	}
	if ReadI64(b, EnemyNameOffset) != EnemyStringsOffset {
		t.Fatalf("name offset = 0x%x", ReadI64(b, EnemyNameOffset))
	}
	if ReadI64(b, EnemyModelNameOffset) != EnemyStringsOffset+22 {
		t.Fatalf("model offset = 0x%x", ReadI64(b, EnemyModelNameOffset))
	}
	for i := 98; i < len(b); i++ {
		if b[i] != 0 {
			t.Fatalf("padding byte %d = 0x%x", i, b[i])
		}
	}

	got, err := DecodeEnemy(b)
	if err != nil {
		t.Fatalf("DecodeEnemy: %v", err)
	}
	if got != e {
		t.Fatalf("DecodeEnemy = %+v, want %+v", got, e)
	}
}

func TestDecodeEnemyErrors(t *testing.T) {
	good, err := EncodeEnemy(sampleEnemy())
	if err != nil {
		t.Fatalf("EncodeEnemy: %v", err)
	}
	clone := func() []byte { return append([]byte(nil), good...) }

	if _, err := DecodeEnemy(good[:EnemyFixedSize-1]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short entry: %v", err)
	}

	b := clone()
	PutU32(b, EnemyPartTypeOffset, uint32(PartTypeObject))
	if _, err := DecodeEnemy(b); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("wrong part type: %v", err)
	}

	b = clone()
	PutI64(b, EnemyNameOffset, int64(len(b)))
	if _, err := DecodeEnemy(b); !errors.Is(err, ErrLayout) {
		t.Fatalf("name outside entry: %v", err)
	}

	b = clone()
	PutI64(b, EnemyModelNameOffset, 0x10)
	if _, err := DecodeEnemy(b); !errors.Is(err, ErrLayout) {
		t.Fatalf("model name inside fixed block: %v", err)
	}

	// Overwrite the name terminator and everything after it.
	b = clone()
	for i := EnemyStringsOffset + 20; i < len(b); i++ {
		b[i] = 'z'
	}
	if _, err := DecodeEnemy(b); !errors.Is(err, ErrTruncated) {
		t.Fatalf("unterminated name: %v", err)
	}
}

func TestEncodeEnemyRejectsBadText(t *testing.T) {
	e := sampleEnemy()
	e.ModelName = "c11\x0000"
	if _, err := EncodeEnemy(e); !errors.Is(err, ErrBadText) {
		t.Fatalf("EncodeEnemy error = %v, want ErrBadText", err)
	}
}

func TestPartTypeOf(t *testing.T) {
	b := make([]byte, PartMinSize)
	PutU32(b, PartTypeOffset, uint32(PartTypeCollision))
	pt, err := PartTypeOf(b)
	if err != nil || pt != PartTypeCollision {
		t.Fatalf("PartTypeOf = %v, %v", pt, err)
	}
	if pt.String() != "Collision" {
		t.Fatalf("String = %q", pt.String())
	}
	if _, err := PartTypeOf(b[:PartMinSize-1]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short part: %v", err)
	}
	if PartType(99).String() != "PartType(99)" {
		t.Fatalf("unknown type string = %q", PartType(99).String())
	}
}

func TestPartTypeOf_IgnoresMSB3TypeSlot(t *testing.T) {
	// MSB3 layout: type 2 at 0x08, model index 0 at 0x10.
	b := make([]byte, 0x40)
	PutU32(b, 0x08, uint32(PartTypeEnemy))
	PutU32(b, 0x10, 0)

	pt, err := PartTypeOf(b)
	if err != nil {
		t.Fatalf("PartTypeOf: %v", err)
	}
	if pt != PartTypeMapPiece {
		t.Fatalf("PartTypeOf = %v, want MapPiece (type read from 0x%X)", pt, PartTypeOffset)
	}
	if PartTypeOffset != 0x10 {
		t.Fatalf("PartTypeOffset = 0x%X, want 0x10", PartTypeOffset)
	}
}

func TestAlign8(t *testing.T) {
	for in, want := range map[int]int{0: 0, 1: 8, 8: 8, 9: 16, 98: 104} {
		if got := Align8(in); got != want {
			t.Errorf("Align8(%d) = %d, want %d", in, got, want)
		}
	}
}
