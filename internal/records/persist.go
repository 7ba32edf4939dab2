package records

import (
	"fmt"

	"github.com/aanand-mishra/students/internal/storage"
)

// Open loads a Store from backend.
//
// Corruption never aborts startup: when the persisted roster cannot be
// parsed, or parses into records that break the store's invariants, Open
// returns an empty, usable Store together with an error wrapping
// storage.ErrCorrupt. The same applies to storage.ErrIO read failures.
// Callers report the error and carry on with the returned Store.
func Open(backend storage.Storage) (*Store, error) {
	list, err := backend.Load()
	if err != nil {
		return New(), err
	}

	s, err := FromStudents(list)
	if err != nil {
		return New(), fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}

	return s, nil
}

// Persist writes every student to backend in store order.
func (s *Store) Persist(backend storage.Storage) error {
	if err := backend.Save(s.All()); err != nil {
		return fmt.Errorf("save failed: %w", err)
	}
	return nil
}
