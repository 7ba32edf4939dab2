// Package student contains the console handlers for the Student resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// The console expects handler functions with the signature:
//
//	func(in *console.Prompter, out io.Writer) error
//
// That signature has no room for the record store. Each factory below
// accepts the store and returns a function with the exact signature the
// console needs; the inner function closes over the store.
//
//	c.Handle("Add Student", student.New(store))
//	//                      ^^^^^^^^^^^^^^^^^^
//	//   New(store) runs ONCE at startup; the returned handler runs every
//	//   time the user picks menu entry 1.
package student

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aanand-mishra/students/internal/console"
	"github.com/aanand-mishra/students/internal/records"
	"github.com/aanand-mishra/students/internal/types"
	"github.com/aanand-mishra/students/internal/utils/response"
)

// Store is the subset of *records.Store the handlers use.
// *records.Store satisfies it.
type Store interface {
	Add(name string, rollNo int, marks float64) error
	Find(rollNo int) (types.Student, error)
	Update(rollNo int, name string, marks float64) error
	Delete(rollNo int) error
	All() []types.Student
	Statistics() (types.Statistics, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles "Add Student".
// Prompts for name, roll number and marks, then adds the student.
// Unparseable numbers fail with console.ErrInvalidInput before the store is
// touched; field and duplicate checks are left to the store.
// ─────────────────────────────────────────────────────────────────────────────
func New(store Store) console.HandlerFunc {
	return func(in *console.Prompter, out io.Writer) error {
		slog.Info("creating a student")

		fmt.Fprintln(out)
		response.Title(out, "Enter Student Details:")

		name, err := in.Line("Name: ")
		if err != nil {
			return err
		}

		rollNo, err := in.Int("Roll No: ", "roll number")
		if err != nil {
			return err
		}

		marks, err := in.Float("Marks: ", "marks")
		if err != nil {
			return err
		}

		if err := store.Add(name, rollNo, marks); err != nil {
			return err
		}

		slog.Info("student created", slog.Int("rollNo", rollNo))
		response.Success(out, "Student added successfully!")
		return nil
	}
}

// GetList handles "Display All Students".
func GetList(store Store) console.HandlerFunc {
	return func(_ *console.Prompter, out io.Writer) error {
		slog.Info("getting all students")

		fmt.Fprintln(out)
		response.Students(out, store.All())
		return nil
	}
}

// GetByRollNo handles "Search Student".
func GetByRollNo(store Store) console.HandlerFunc {
	return func(in *console.Prompter, out io.Writer) error {
		rollNo, err := in.Int("Enter Roll No to search: ", "roll number")
		if err != nil {
			return err
		}
		slog.Info("getting a student", slog.Int("rollNo", rollNo))

		student, err := store.Find(rollNo)
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		response.Title(out, "Student Found:")
		response.Students(out, []types.Student{student})
		return nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles "Update Student".
// The roll number is checked before asking for the new values, so the user
// is not made to type a name and marks for a student that does not exist.
// ─────────────────────────────────────────────────────────────────────────────
func Update(store Store) console.HandlerFunc {
	return func(in *console.Prompter, out io.Writer) error {
		rollNo, err := in.Int("Enter Roll No to update: ", "roll number")
		if err != nil {
			return err
		}
		slog.Info("updating a student", slog.Int("rollNo", rollNo))

		if _, err := store.Find(rollNo); err != nil {
			return err
		}

		name, err := in.Line("Enter new Name: ")
		if err != nil {
			return err
		}

		marks, err := in.Float("Enter new Marks: ", "marks")
		if err != nil {
			return err
		}

		if err := store.Update(rollNo, name, marks); err != nil {
			return err
		}

		slog.Info("student updated", slog.Int("rollNo", rollNo))
		response.Success(out, "Student details updated successfully!")
		return nil
	}
}

// Delete handles "Delete Student".
func Delete(store Store) console.HandlerFunc {
	return func(in *console.Prompter, out io.Writer) error {
		rollNo, err := in.Int("Enter Roll No to delete: ", "roll number")
		if err != nil {
			return err
		}
		slog.Info("deleting a student", slog.Int("rollNo", rollNo))

		if err := store.Delete(rollNo); err != nil {
			return err
		}

		slog.Info("student deleted", slog.Int("rollNo", rollNo))
		response.Success(out, "Student deleted successfully!")
		return nil
	}
}

// Statistics handles "Show Statistics". An empty roster is not an error
// for the user; it prints the usual "no students" line.
func Statistics(store Store) console.HandlerFunc {
	return func(_ *console.Prompter, out io.Writer) error {
		stats, err := store.Statistics()
		if errors.Is(err, records.ErrEmpty) {
			fmt.Fprintln(out, response.MsgNoStudents)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out)
		response.Statistics(out, stats)
		return nil
	}
}

// Register wires every student handler into c in menu order.
func Register(c *console.Console, store Store) {
	c.Handle("Add Student", New(store))
	c.Handle("Display All Students", GetList(store))
	c.Handle("Search Student", GetByRollNo(store))
	c.Handle("Update Student", Update(store))
	c.Handle("Delete Student", Delete(store))
	c.Handle("Show Statistics", Statistics(store))
}
