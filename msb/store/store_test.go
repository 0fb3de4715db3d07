package store

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/msbkit/internal/format"
	"github.com/joshuapare/msbkit/internal/testutil"
	"github.com/joshuapare/msbkit/internal/writer"
	"github.com/joshuapare/msbkit/msb"
	"github.com/joshuapare/msbkit/pkg/types"
)

// lettered builds a container whose enemies are named A, B, C, ... in order.
func lettered(t *testing.T, n int) []byte {
	t.Helper()
	entries := [][]byte{testutil.OtherPart(format.PartTypeMapPiece, 9)}
	for i := 0; i < n; i++ {
		entries = append(entries, testutil.EnemyPart(t, format.EnemyEntry{
			Name:         string(rune('A' + i)),
			ModelName:    "c1100",
			ThinkParamID: int32(i),
			Position:     [3]float32{float32(i), 0, 0},
		}))
	}
	entries = append(entries, testutil.OtherPart(format.PartTypePlayer, 7))
	return testutil.Build(t,
		testutil.Section{Name: "MODEL_PARAM_ST", Version: 3, Entries: [][]byte{testutil.Blob(0x20, 5)}},
		testutil.Section{Name: format.PartsParamName, Version: 3, Entries: entries},
	)
}

func loaded(t *testing.T, data []byte) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Load(data))
	return s
}

func names(s *Store) string {
	var b strings.Builder
	for _, r := range s.Records() {
		b.WriteString(r.Name)
	}
	return b.String()
}

func TestStore_RoundTripUnmodified(t *testing.T) {
	data := testutil.Sample(t)
	s := loaded(t, data)

	assert.Equal(t, 3, s.Len())
	assert.False(t, s.Modified())

	out, err := s.Serialize()
	require.NoError(t, err)
	assert.Equal(t, data, out)

	// Serialize does not change anything.
	again, err := s.Serialize()
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestStore_EmptyState(t *testing.T) {
	s := New()
	assert.False(t, s.Loaded())
	assert.Nil(t, s.Document())
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Modified())

	_, err := s.Serialize()
	assert.ErrorIs(t, err, types.ErrState)

	err = s.SaveFile(filepath.Join(t.TempDir(), "out.msb"))
	assert.ErrorIs(t, err, types.ErrState)

	_, err = s.Get(0)
	assert.ErrorIs(t, err, types.ErrIndex)
}

func TestStore_FieldRoundTrip(t *testing.T) {
	s := loaded(t, testutil.Sample(t))

	values := map[msb.Field]string{
		msb.FieldName:          "c2000_0100",
		msb.FieldModelName:     "c2000",
		msb.FieldThinkParamID:  "200000",
		msb.FieldNPCParamID:    "-200001",
		msb.FieldEventEntityID: "1300999",
		msb.FieldTalkID:        "0",
		msb.FieldCharaInitID:   "2147483647",
		msb.FieldPosition:      "<12.5, -0.75, 1000>",
		msb.FieldRotation:      "<0, 270, 0>",
	}
	for f, v := range values {
		require.NoError(t, s.SetField(1, f, v), f.String())
		got, err := s.FieldString(1, f)
		require.NoError(t, err)
		assert.Equal(t, v, got, f.String())
	}

	r, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, int32(-200001), r.NPCParamID)
	assert.Equal(t, msb.Vector3{X: 12.5, Y: -0.75, Z: 1000}, r.Position)

	modified, err := s.RecordModified(1)
	require.NoError(t, err)
	assert.True(t, modified)
	modified, err = s.RecordModified(0)
	require.NoError(t, err)
	assert.False(t, modified)
	assert.True(t, s.Modified())

	// The edit survives a save and reload.
	out, err := s.Serialize()
	require.NoError(t, err)
	s2 := loaded(t, out)
	r2, err := s2.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "c2000_0100", r2.Name)
	assert.Equal(t, int32(2147483647), r2.CharaInitID)
	assert.Equal(t, msb.Vector3{X: 0, Y: 270, Z: 0}, r2.Rotation)
}

func TestStore_SetFieldRejectsWithoutMutation(t *testing.T) {
	s := loaded(t, testutil.Sample(t))
	before, err := s.Get(0)
	require.NoError(t, err)

	f, err := msb.ParseField("thinkParamId")
	require.NoError(t, err)
	err = s.SetField(0, f, "not-a-number")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrFormat)

	after, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.False(t, s.Modified())

	assert.ErrorIs(t, s.SetField(0, msb.FieldPosition, "1.0, 2.0"), types.ErrFormat)
	assert.ErrorIs(t, s.SetField(9, msb.FieldName, "x"), types.ErrIndex)
	assert.ErrorIs(t, s.SetField(-1, msb.FieldName, "x"), types.ErrIndex)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := loaded(t, testutil.Sample(t))
	r, err := s.Get(0)
	require.NoError(t, err)
	r.Name = "changed"

	got, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "c1100_0000", got.Name)

	recs := s.Records()
	recs[0].Name = "changed"
	got, err = s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "c1100_0000", got.Name)
}

func TestStore_DuplicateAt(t *testing.T) {
	s := loaded(t, lettered(t, 3))

	idx, err := s.DuplicateAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "ABBC", names(s))

	orig, err := s.Get(1)
	require.NoError(t, err)
	dup, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, orig, dup)
	assert.True(t, s.Modified())

	// The copy is independent.
	require.NoError(t, s.SetField(2, msb.FieldName, "B2"))
	orig, err = s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "B", orig.Name)
	assert.Equal(t, "ABB2C", names(s))

	_, err = s.DuplicateAt(4)
	assert.ErrorIs(t, err, types.ErrIndex)

	out, err := s.Serialize()
	require.NoError(t, err)
	s2 := loaded(t, out)
	assert.Equal(t, "ABB2C", names(s2))
}

func TestStore_DeleteAt(t *testing.T) {
	s := loaded(t, lettered(t, 3))

	require.NoError(t, s.DeleteAt(0))
	assert.Equal(t, "BC", names(s))
	r, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "B", r.Name)
	assert.True(t, s.Modified())

	assert.ErrorIs(t, s.DeleteAt(2), types.ErrIndex)
	assert.Equal(t, "BC", names(s))
}

func TestStore_DeleteManyOrderIndependent(t *testing.T) {
	for _, idx := range [][]int{{0, 2}, {2, 0}, {2, 0, 2}} {
		s := loaded(t, lettered(t, 4))
		require.NoError(t, s.DeleteMany(idx))
		assert.Equal(t, "BD", names(s), "%v", idx)
	}
}

func TestStore_DeleteManyIsAtomic(t *testing.T) {
	s := loaded(t, lettered(t, 4))

	err := s.DeleteMany([]int{0, 4})
	assert.ErrorIs(t, err, types.ErrIndex)
	assert.Equal(t, "ABCD", names(s))
	assert.False(t, s.Modified())

	require.NoError(t, s.DeleteMany(nil))
	assert.False(t, s.Modified())
}

func TestStore_DeleteAllThenSerialize(t *testing.T) {
	s := loaded(t, lettered(t, 2))
	require.NoError(t, s.DeleteMany([]int{0, 1}))

	out, err := s.Serialize()
	require.NoError(t, err)
	s2 := loaded(t, out)
	assert.Equal(t, 0, s2.Len())
	assert.Equal(t, 2, s2.Document().Sections()[1].Entries)
}

func TestStore_LoadFailureKeepsState(t *testing.T) {
	s := loaded(t, lettered(t, 3))
	require.NoError(t, s.SetField(0, msb.FieldName, "Z"))

	err := s.Load([]byte("not an msb file"))
	assert.ErrorIs(t, err, types.ErrFormat)
	assert.Equal(t, "ZBC", names(s))
	assert.True(t, s.Modified())

	err = s.LoadFile(filepath.Join(t.TempDir(), "missing.msb"))
	assert.ErrorIs(t, err, types.ErrIO)
	assert.Equal(t, "ZBC", names(s))
}

func TestStore_LoadReplacesState(t *testing.T) {
	s := loaded(t, lettered(t, 3))
	require.NoError(t, s.DeleteAt(0))

	require.NoError(t, s.Load(lettered(t, 4)))
	assert.Equal(t, "ABCD", names(s))
	assert.False(t, s.Modified())
}

func TestStore_FileRoundTrip(t *testing.T) {
	data := testutil.Sample(t)
	path := testutil.WriteTemp(t, "m30_00_00_00.msb", data)

	var logs bytes.Buffer
	s := New(WithLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	require.NoError(t, s.LoadFile(path))
	assert.Equal(t, 3, s.Len())

	require.NoError(t, s.SetField(2, msb.FieldTalkID, "10001"))
	require.NoError(t, s.SaveFile(path))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	s2 := New()
	require.NoError(t, s2.Load(saved))
	r, err := s2.Get(2)
	require.NoError(t, err)
	assert.Equal(t, int32(10001), r.TalkID)

	assert.Contains(t, logs.String(), "saved")
}

func TestStore_SaveTo(t *testing.T) {
	data := testutil.Sample(t)
	s := loaded(t, data)

	var w writer.MemWriter
	require.NoError(t, s.SaveTo(&w))
	assert.Equal(t, data, w.Buf)

	assert.ErrorIs(t, New().SaveTo(&w), types.ErrState)
}

func TestStore_SaveRejectsBadTextWithoutWriting(t *testing.T) {
	data := testutil.Sample(t)
	path := testutil.WriteTemp(t, "m.msb", data)
	s := loaded(t, data)

	// SetField refuses the value, so the record stays encodable.
	assert.ErrorIs(t, s.SetField(0, msb.FieldName, strings.Repeat("x", 2000)), types.ErrFormat)
	require.NoError(t, s.SaveFile(path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
