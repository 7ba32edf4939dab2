package records

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/students/internal/storage"
	"github.com/aanand-mishra/students/internal/storage/textfile"
	"github.com/aanand-mishra/students/internal/types"
)

// fakeBackend is an in-memory storage.Storage.
type fakeBackend struct {
	students []types.Student
	loadErr  error
	saveErr  error
	saved    []types.Student
}

func (f *fakeBackend) Load() ([]types.Student, error) { return f.students, f.loadErr }

func (f *fakeBackend) Save(students []types.Student) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = students
	return nil
}

func TestOpen_SaveLoadRoundTrip(t *testing.T) {
	backend := textfile.New(filepath.Join(t.TempDir(), "students.dat"))

	original := seeded(t,
		types.Student{Name: "Alice", RollNo: 1, Marks: 88.5},
		types.Student{Name: "Bob", RollNo: 2, Marks: 42.0},
	)
	require.NoError(t, original.Persist(backend))

	reloaded, err := Open(backend)
	require.NoError(t, err)
	assert.Equal(t, original.All(), reloaded.All())
}

func TestOpen_MissingFileIsEmpty(t *testing.T) {
	s, err := Open(textfile.New(filepath.Join(t.TempDir(), "none.dat")))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestOpen_TruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.dat")
	require.NoError(t, os.WriteFile(path, []byte("Alice\n1\n88.5\nDangling\n"), 0o644))

	s, err := Open(textfile.New(path))
	require.ErrorIs(t, err, storage.ErrCorrupt)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.Len())

	// The degraded store is fully usable.
	require.NoError(t, s.Add("Fresh", 1, 50))
}

func TestOpen_InvariantViolationIsCorruption(t *testing.T) {
	tests := map[string][]types.Student{
		"duplicate roll number": {{Name: "A", RollNo: 1, Marks: 1}, {Name: "B", RollNo: 1, Marks: 2}},
		"marks out of range":    {{Name: "A", RollNo: 1, Marks: 180}},
		"empty name":            {{Name: "", RollNo: 1, Marks: 10}},
	}

	for name, list := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := Open(&fakeBackend{students: list})
			assert.ErrorIs(t, err, storage.ErrCorrupt)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestOpen_IOError(t *testing.T) {
	s, err := Open(&fakeBackend{loadErr: storage.ErrIO})
	assert.ErrorIs(t, err, storage.ErrIO)
	assert.Equal(t, 0, s.Len())
}

func TestPersist(t *testing.T) {
	t.Run("saves in store order", func(t *testing.T) {
		s := seeded(t,
			types.Student{Name: "B", RollNo: 2, Marks: 20},
			types.Student{Name: "A", RollNo: 1, Marks: 10},
		)
		backend := &fakeBackend{}

		require.NoError(t, s.Persist(backend))
		assert.Equal(t, s.All(), backend.saved)
	})

	t.Run("wraps backend failure", func(t *testing.T) {
		backend := &fakeBackend{saveErr: errors.Join(storage.ErrIO, errors.New("disk full"))}

		err := New().Persist(backend)
		require.ErrorIs(t, err, storage.ErrIO)
		assert.Contains(t, err.Error(), "save failed")
	})
}
