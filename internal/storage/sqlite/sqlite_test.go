package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students/internal/config"
	"github.com/aanand-mishra/students/internal/storage"
	"github.com/aanand-mishra/students/internal/types"
)

var _ storage.Storage = (*SQLite)(nil)

func newTestDB(t *testing.T) (*SQLite, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "students.db")
	db, err := New(&config.Config{StoragePath: path, StorageBackend: config.BackendSQLite})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestSQLite_EmptyLoad(t *testing.T) {
	db, _ := newTestDB(t)

	got, err := db.Load()
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLite_RoundTripPreservesOrder(t *testing.T) {
	db, path := newTestDB(t)

	// Roll numbers deliberately out of numeric order.
	want := []types.Student{
		{Name: "Bob", RollNo: 9, Marks: 42},
		{Name: "Alice", RollNo: 1, Marks: 88.5},
		{Name: "Cara", RollNo: 5, Marks: 0},
	}
	require.NoError(t, db.Save(want))

	got, err := db.Load()
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Reopening the same file sees the same roster.
	reopened, err := New(&config.Config{StoragePath: path})
	require.NoError(t, err)
	defer reopened.Close()

	again, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestSQLite_SaveReplaces(t *testing.T) {
	db, _ := newTestDB(t)

	require.NoError(t, db.Save([]types.Student{
		{Name: "A", RollNo: 1, Marks: 10},
		{Name: "B", RollNo: 2, Marks: 20},
	}))
	require.NoError(t, db.Save([]types.Student{{Name: "B", RollNo: 2, Marks: 25}}))

	got, err := db.Load()
	require.NoError(t, err)
	assert.Equal(t, []types.Student{{Name: "B", RollNo: 2, Marks: 25}}, got)
}

func TestSQLite_SaveDuplicateKeepsPrevious(t *testing.T) {
	db, _ := newTestDB(t)

	prev := []types.Student{{Name: "A", RollNo: 1, Marks: 10}}
	require.NoError(t, db.Save(prev))

	err := db.Save([]types.Student{
		{Name: "X", RollNo: 7, Marks: 1},
		{Name: "Y", RollNo: 7, Marks: 2},
	})
	assert.ErrorIs(t, err, storage.ErrIO)

	got, err := db.Load()
	require.NoError(t, err)
	assert.Equal(t, prev, got)
}
