package msb

import (
	"math"
	"strconv"

	"github.com/joshuapare/msbkit/internal/format"
)

// Vector3 is three packed float32 components.
type Vector3 struct {
	X, Y, Z float32
}

// String formats v as "<x, y, z>" using the shortest representation that
// parses back to the same float32 values.
func (v Vector3) String() string {
	return "<" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ", " + formatFloat(v.Z) + ">"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (v Vector3) array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }

func vectorOf(a [3]float32) Vector3 { return Vector3{X: a[0], Y: a[1], Z: a[2]} }

// EnemyRecord is one placed enemy or NPC instance.
type EnemyRecord struct {
	Name          string
	ModelName     string
	ThinkParamID  int32
	NPCParamID    int32
	EventEntityID int32
	TalkID        int32
	CharaInitID   int32
	Position      Vector3
	Rotation      Vector3

	// src is set for decoded records and shared by copies; it is never mutated.
	src *source
}

// source remembers what a record was decoded from.
type source struct {
	raw   []byte
	entry format.EnemyEntry
}

// Modified reports whether r differs from the entry it was decoded from.
// Records that were never decoded always report true.
func (r *EnemyRecord) Modified() bool {
	return r.src == nil || !sameEntry(r.entry(), r.src.entry)
}

// Clone returns a copy of r. The copy encodes identically to r.
func (r *EnemyRecord) Clone() EnemyRecord {
	return *r
}

func (r *EnemyRecord) entry() format.EnemyEntry {
	return format.EnemyEntry{
		Name:          r.Name,
		ModelName:     r.ModelName,
		ThinkParamID:  r.ThinkParamID,
		NPCParamID:    r.NPCParamID,
		EventEntityID: r.EventEntityID,
		TalkID:        r.TalkID,
		CharaInitID:   r.CharaInitID,
		Position:      r.Position.array(),
		Rotation:      r.Rotation.array(),
	}
}

func recordOf(e format.EnemyEntry, raw []byte) EnemyRecord {
	return EnemyRecord{
		Name:          e.Name,
		ModelName:     e.ModelName,
		ThinkParamID:  e.ThinkParamID,
		NPCParamID:    e.NPCParamID,
		EventEntityID: e.EventEntityID,
		TalkID:        e.TalkID,
		CharaInitID:   e.CharaInitID,
		Position:      vectorOf(e.Position),
		Rotation:      vectorOf(e.Rotation),
		src:           &source{raw: raw, entry: e},
	}
}

// encode returns the original bytes when r is unmodified and the canonical
// layout otherwise.
func (r *EnemyRecord) encode() ([]byte, error) {
	if !r.Modified() {
		return r.src.raw, nil
	}
	return format.EncodeEnemy(r.entry())
}

// sameEntry compares floats bit for bit so -0, 0 and NaN payloads are told apart.
func sameEntry(a, b format.EnemyEntry) bool {
	return a.Name == b.Name &&
		a.ModelName == b.ModelName &&
		a.ThinkParamID == b.ThinkParamID &&
		a.NPCParamID == b.NPCParamID &&
		a.EventEntityID == b.EventEntityID &&
		a.TalkID == b.TalkID &&
		a.CharaInitID == b.CharaInitID &&
		sameVector(a.Position, b.Position) &&
		sameVector(a.Rotation, b.Rotation)
}

func sameVector(a, b [3]float32) bool {
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

// EncodeEnemy encodes a single record as a part entry.
func EncodeEnemy(r EnemyRecord) ([]byte, error) {
	b, err := r.encode()
	if err != nil {
		return nil, formatError("encode enemy", err)
	}
	return b, nil
}

// DecodeEnemy decodes a single enemy part entry. The returned record keeps a
// copy of entry.
func DecodeEnemy(entry []byte) (EnemyRecord, error) {
	raw := append([]byte(nil), entry...)
	e, err := format.DecodeEnemy(raw)
	if err != nil {
		return EnemyRecord{}, formatError("decode enemy", err)
	}
	return recordOf(e, raw), nil
}
