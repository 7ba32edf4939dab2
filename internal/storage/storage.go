// Package storage defines the Storage interface — a contract that any
// persistence backend must satisfy to load and save the student roster.
//
// WHY AN INTERFACE?
// ─────────────────
// The record store and the console should not know or care whether the
// roster lives in a plain text file or in a SQLite database. By depending
// only on this interface:
//
//   - Switching backends = implement the interface, change the
//     storage_backend config value. Zero store or handler changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
package storage

import (
	"errors"

	"github.com/aanand-mishra/students/internal/types"
)

// Errors returned (wrapped) by every backend. Callers inspect them with
// errors.Is.
var (
	// ErrCorrupt means the persisted data could not be parsed.
	ErrCorrupt = errors.New("corrupted data")

	// ErrIO means the backing file or database could not be opened,
	// created, read or written.
	ErrIO = errors.New("storage i/o failure")
)

// Storage is the persistence contract. The whole roster is read at startup
// and written back in one piece at shutdown; there is no per-record access.
type Storage interface {
	// Load returns every persisted student in stored order. A backend with
	// nothing persisted yet returns an empty slice and a nil error.
	Load() ([]types.Student, error)

	// Save replaces the persisted roster with students, in the given order.
	Save(students []types.Student) error
}
