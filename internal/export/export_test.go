package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/msbkit/internal/testutil"
	"github.com/joshuapare/msbkit/msb"
)

func sampleRecords(t *testing.T) []msb.EnemyRecord {
	t.Helper()
	enemies, err := msb.DecodeEnemies(testutil.Sample(t))
	require.NoError(t, err)
	return enemies
}

func TestRows(t *testing.T) {
	rows := Rows(sampleRecords(t))
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].Row)
	assert.Equal(t, 3, rows[2].Row)
	assert.Equal(t, "c1100_0001", rows[1].Name)
	assert.Equal(t, float32(-10.5), rows[1].PosX)
	assert.Equal(t, float32(-45), rows[1].RotY)
	assert.Equal(t, int32(2000), rows[2].CharaInitID)
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleRecords(t)))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "c1100_0000", got[0]["name"])
	assert.Equal(t, float64(110000), got[0]["thinkParamId"])
	assert.Equal(t, float64(2), got[1]["row"])
	assert.Contains(t, buf.String(), "\n  {")
}

func TestJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestSQLite_WriteAndReplace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enemies.db")
	records := sampleRecords(t)

	require.NoError(t, SQLite(path, records))
	rows, err := ReadSQLite(path)
	require.NoError(t, err)
	assert.Equal(t, Rows(records), rows)

	// A second export replaces the table contents.
	require.NoError(t, SQLite(path, records[:1]))
	rows, err = ReadSQLite(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1100_0000", rows[0].Name)

	require.NoError(t, SQLite(path, nil))
	rows, err = ReadSQLite(path)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
