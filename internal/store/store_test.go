package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a store in a temp directory for testing.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	require.NoError(t, st.Initialize())
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStore_Initialize(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := New(dbPath)
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Initialize())

	// Initialize is idempotent
	assert.NoError(t, st.Initialize())
}

func TestStore_GetSetValue(t *testing.T) {
	st := newTestStore(t)

	err := st.SetValue("test_key", "test_value")
	require.NoError(t, err)

	val, err := st.GetValue("test_key")
	require.NoError(t, err)
	assert.Equal(t, "test_value", val)

	// Get non-existent key returns empty
	val, err = st.GetValue("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, "", val)

	// Update existing value
	require.NoError(t, st.SetValue("test_key", "updated"))
	val, err = st.GetValue("test_key")
	require.NoError(t, err)
	assert.Equal(t, "updated", val)
}

func TestStore_SaveAndGetRun(t *testing.T) {
	st := newTestStore(t)

	id, err := st.SaveRun(&QueryRun{
		QueryType:   "material compliance",
		DatabaseKey: "MI_Restricted_Substances",
		ItemCount:   3,
		Parameters:  "indicator=RoHS",
		Summary:     "RoHS=RohsCompliant",
	})
	require.NoError(t, err)
	assert.Greater(t, id, int64(0))

	run, err := st.GetRun(id)
	require.NoError(t, err)
	require.NotNil(t, run)
	assert.Equal(t, "material compliance", run.QueryType)
	assert.Equal(t, "MI_Restricted_Substances", run.DatabaseKey)
	assert.Equal(t, 3, run.ItemCount)
	assert.False(t, run.Timestamp.IsZero())
}

func TestStore_GetRun_NotFound(t *testing.T) {
	st := newTestStore(t)

	run, err := st.GetRun(999)
	require.NoError(t, err)
	assert.Nil(t, run)
}

func TestStore_ListRuns(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := st.SaveRun(&QueryRun{QueryType: "part compliance", DatabaseKey: "db", ItemCount: i})
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(0)
	require.NoError(t, err)
	require.Len(t, runs, 5)
	// Newest first
	assert.Equal(t, 4, runs[0].ItemCount)
	assert.Equal(t, 0, runs[4].ItemCount)
}

func TestStore_ListRuns_Limit(t *testing.T) {
	st := newTestStore(t)

	for i := 0; i < 5; i++ {
		_, err := st.SaveRun(&QueryRun{QueryType: "part compliance", DatabaseKey: "db"})
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestStore_ListRuns_Empty(t *testing.T) {
	st := newTestStore(t)

	runs, err := st.ListRuns(0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
