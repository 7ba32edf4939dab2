// Package records implements the in-memory student roster.
//
// The Store keeps students in insertion order and looks them up by roll
// number with a linear scan; rosters are small enough that an index would
// only add bookkeeping. Every mutating operation validates first and
// commits second, so a rejected call leaves the store exactly as it was.
package records

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/students/internal/types"
)

// Store is the ordered roster of students. The zero value is not usable;
// create one with New.
type Store struct {
	mu       sync.Mutex
	students []types.Student
	validate *validator.Validate
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		students: make([]types.Student, 0),
		validate: validator.New(),
	}
}

// FromStudents builds a Store by adding each student in order. The first
// invalid or duplicate record aborts the build.
func FromStudents(list []types.Student) (*Store, error) {
	s := New()
	for i, st := range list {
		if err := s.Add(st.Name, st.RollNo, st.Marks); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return s, nil
}

// Add appends a new student. It fails with ErrValidation when name is
// empty, rollNo is negative, marks fall outside [0,100] or rollNo already
// exists.
func (s *Store) Add(name string, rollNo int, marks float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := types.Student{Name: name, RollNo: rollNo, Marks: marks}
	if err := s.validate.Struct(student); err != nil {
		return validationError(err)
	}

	if s.indexOf(rollNo) != -1 {
		return fmt.Errorf("%w: student with roll number %d already exists", ErrValidation, rollNo)
	}

	s.students = append(s.students, student)
	return nil
}

// Find returns a copy of the student with rollNo, or ErrNotFound.
func (s *Store) Find(rollNo int) (types.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(rollNo)
	if i == -1 {
		return types.Student{}, fmt.Errorf("%w: roll number %d", ErrNotFound, rollNo)
	}
	return s.students[i], nil
}

// Update replaces the name and marks of the student with rollNo. The roll
// number itself never changes. New values go through the same checks as Add.
func (s *Store) Update(rollNo int, name string, marks float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(rollNo)
	if i == -1 {
		return fmt.Errorf("%w: roll number %d", ErrNotFound, rollNo)
	}

	candidate := types.Student{Name: name, RollNo: rollNo, Marks: marks}
	if err := s.validate.Struct(candidate); err != nil {
		return validationError(err)
	}

	s.students[i].Name = name
	s.students[i].Marks = marks
	return nil
}

// Delete removes the student with rollNo. Students after it keep their
// relative order.
func (s *Store) Delete(rollNo int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(rollNo)
	if i == -1 {
		return fmt.Errorf("%w: roll number %d", ErrNotFound, rollNo)
	}

	s.students = append(s.students[:i], s.students[i+1:]...)
	return nil
}

// All returns a copy of every student in store order.
func (s *Store) All() []types.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Student, len(s.students))
	copy(out, s.students)
	return out
}

// Len reports the number of students.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.students)
}

// Statistics computes count, mean, maximum and minimum marks in one pass.
// It returns ErrEmpty when there are no students.
func (s *Store) Statistics() (types.Statistics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.students) == 0 {
		return types.Statistics{}, ErrEmpty
	}

	stats := types.Statistics{
		Max: s.students[0].Marks,
		Min: s.students[0].Marks,
	}
	var total float64
	for _, st := range s.students {
		total += st.Marks
		if st.Marks > stats.Max {
			stats.Max = st.Marks
		}
		if st.Marks < stats.Min {
			stats.Min = st.Marks
		}
	}
	stats.Count = len(s.students)
	stats.Average = total / float64(stats.Count)

	return stats, nil
}

// indexOf returns the position of rollNo or -1. Callers hold s.mu.
func (s *Store) indexOf(rollNo int) int {
	for i := range s.students {
		if s.students[i].RollNo == rollNo {
			return i
		}
	}
	return -1
}
