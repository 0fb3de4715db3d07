// Package testutil builds synthetic MSB containers for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/msbkit/internal/format"
)

// Section is one parameter section of a fixture container.
type Section struct {
	Name    string
	Version int32
	Entries [][]byte
}

// Build lays out a container from sections in order.
// Calls t.Fatal if a section name cannot be encoded.
func Build(t testing.TB, sections ...Section) []byte {
	t.Helper()

	out := format.NewHeader()
	for i, s := range sections {
		nameRaw, err := format.EncodeParamName(s.Name)
		if err != nil {
			t.Fatalf("encode section name %q: %v", s.Name, err)
		}
		out = format.AppendParam(out, s.Version, nameRaw, s.Entries, i == len(sections)-1)
	}
	return out
}

// EnemyPart encodes e in the canonical layout.
func EnemyPart(t testing.TB, e format.EnemyEntry) []byte {
	t.Helper()

	b, err := format.EncodeEnemy(e)
	if err != nil {
		t.Fatalf("encode enemy %q: %v", e.Name, err)
	}
	return b
}

// PaddedEnemyPart encodes e followed by extra zero bytes. The result
// decodes to e but is not what the encoder would produce, which makes it
// useful for checking that unmodified entries are written back verbatim.
func PaddedEnemyPart(t testing.TB, e format.EnemyEntry, extra int) []byte {
	t.Helper()

	b := EnemyPart(t, e)
	return append(b, make([]byte, extra)...)
}

// OtherPart returns an opaque part entry of the given type. The bytes after
// the type field are filled with a pattern derived from seed.
func OtherPart(typ format.PartType, seed byte) []byte {
	b := make([]byte, 0x30)
	for i := range b {
		b[i] = seed + byte(i)
	}
	format.PutU32(b, format.PartTypeOffset, uint32(typ))
	return b
}

// Blob returns n opaque bytes for entries of sections the codec does not
// interpret.
func Blob(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed ^ byte(i*7)
	}
	return b
}

// SampleEnemies returns the enemies used by Sample, in file order.
func SampleEnemies() []format.EnemyEntry {
	return []format.EnemyEntry{
		{
			Name: "c1100_0000", ModelName: "c1100",
			ThinkParamID: 110000, NPCParamID: 110000, EventEntityID: -1, TalkID: 0, CharaInitID: -1,
			Position: [3]float32{1, 2, 3}, Rotation: [3]float32{0, 90, 0},
		},
		{
			Name: "c1100_0001", ModelName: "c1100",
			ThinkParamID: 110001, NPCParamID: 110010, EventEntityID: 1300800, TalkID: 0, CharaInitID: -1,
			Position: [3]float32{-10.5, 0.25, 42}, Rotation: [3]float32{0, -45, 0},
		},
		{
			Name: "c0000_0005", ModelName: "c0000",
			ThinkParamID: 0, NPCParamID: 10, EventEntityID: 1300801, TalkID: 10000, CharaInitID: 2000,
			Position: [3]float32{100, -3.75, 7.5}, Rotation: [3]float32{0, 180, 0},
		},
	}
}

// Sample returns a container with model, event and point sections, and a
// parts section holding map pieces, objects, the SampleEnemies block and
// trailing player and collision parts. The second enemy carries padding so
// its bytes differ from the canonical encoding.
func Sample(t testing.TB) []byte {
	t.Helper()

	es := SampleEnemies()
	return Build(t,
		Section{Name: "MODEL_PARAM_ST", Version: 3, Entries: [][]byte{Blob(0x20, 1), Blob(0x28, 2)}},
		Section{Name: "EVENT_PARAM_ST", Version: 3, Entries: [][]byte{Blob(0x18, 3)}},
		Section{Name: "POINT_PARAM_ST", Version: 3},
		Section{Name: format.PartsParamName, Version: 3, Entries: [][]byte{
			OtherPart(format.PartTypeMapPiece, 0x10),
			OtherPart(format.PartTypeObject, 0x20),
			EnemyPart(t, es[0]),
			PaddedEnemyPart(t, es[1], 16),
			EnemyPart(t, es[2]),
			OtherPart(format.PartTypePlayer, 0x30),
			OtherPart(format.PartTypeCollision, 0x40),
		}},
	)
}

// WriteTemp writes data to a file in a per-test temporary directory and
// returns its path.
func WriteTemp(t testing.TB, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
