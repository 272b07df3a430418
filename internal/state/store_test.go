package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeAt(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "job_state.json"))
}

func TestLoadMissingFile(t *testing.T) {
	st := storeAt(t)
	snap := st.Load(now, 90)
	assert.Empty(t, snap)
}

func TestLoadCorruptFile(t *testing.T) {
	st := storeAt(t)
	require.NoError(t, os.WriteFile(st.path, []byte("{not json"), 0o644))

	snap := st.Load(now, 90)
	assert.Empty(t, snap, "corrupt snapshot degrades to empty state")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := storeAt(t)

	snap := Snapshot{}
	snap.RecordSighting("Acme", "id1", now, "Staff ML Engineer", now)
	require.NoError(t, st.Save(snap))

	got := st.Load(now, 90)
	require.True(t, got.IsKnown("Acme", "id1"))
	assert.Equal(t, "Staff ML Engineer", got["Acme"].Entries["id1"].Title)
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	st := storeAt(t)
	require.NoError(t, st.Save(Snapshot{}))

	_, err := os.Stat(st.path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadPrunesAndMigrates(t *testing.T) {
	st := storeAt(t)
	doc := `{
  "Legacy Co": ["id1", "id2"],
  "Canon Co": {
    "old": {"first_seen": "` + now.AddDate(0, 0, -120).Format(time.RFC3339) + `", "last_seen": "", "title": "x"},
    "fresh": {"first_seen": "` + now.AddDate(0, 0, -10).Format(time.RFC3339) + `", "last_seen": "", "title": "y"}
  }
}`
	require.NoError(t, os.WriteFile(st.path, []byte(doc), 0o644))

	snap := st.Load(now, 90)

	assert.False(t, snap.IsKnown("Canon Co", "old"))
	assert.True(t, snap.IsKnown("Canon Co", "fresh"))

	require.True(t, snap.IsKnown("Legacy Co", "id1"), "legacy list migrated to canonical entries")
	e := snap["Legacy Co"].Entries["id1"]
	assert.NotEmpty(t, e.FirstSeen)
	assert.NotEmpty(t, e.LastSeen)
}
