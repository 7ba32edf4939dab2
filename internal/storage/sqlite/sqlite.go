// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The roster is still loaded and saved as a whole, exactly like the text
// file backend. The table only adds a position column so Load can return
// students in the order they were saved.
//
// The blank import below registers the sqlite3 driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/students/internal/config"
	"github.com/aanand-mishra/students/internal/storage"
	"github.com/aanand-mishra/students/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath, creates the students
// table if it does not already exist, and returns a ready-to-use *SQLite.
func New(cfg *config.Config) (*SQLite, error) {
	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite.New: open db: %v", storage.ErrIO, err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup.
	//
	// Schema:
	//   position — index of the student in the roster (store order)
	//   roll_no  — the student's unique roll number
	//   name     — student's full name
	//   marks    — marks in [0,100]
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			position INTEGER NOT NULL PRIMARY KEY,
			roll_no  INTEGER NOT NULL UNIQUE,
			name     TEXT    NOT NULL,
			marks    REAL    NOT NULL
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: sqlite.New: create table: %v", storage.ErrIO, err)
	}

	return &SQLite{Db: db}, nil
}

// Close releases the connection pool.
func (s *SQLite) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// Load returns every student row ordered by position.
// A failed Scan means the table holds something that is not a student,
// which is reported as storage.ErrCorrupt.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Load() ([]types.Student, error) {
	stmt, err := s.Db.Prepare(
		"SELECT name, roll_no, marks FROM students ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Load: prepare: %v", storage.ErrIO, err)
	}
	defer stmt.Close()

	rows, err := stmt.Query()
	if err != nil {
		return nil, fmt.Errorf("%w: Load: query: %v", storage.ErrIO, err)
	}
	defer rows.Close()

	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student

		if err := rows.Scan(
			&student.Name,
			&student.RollNo,
			&student.Marks,
		); err != nil {
			return nil, fmt.Errorf("%w: Load: scan row: %v", storage.ErrCorrupt, err)
		}

		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load: rows iteration: %v", storage.ErrIO, err)
	}

	return students, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save replaces the table contents with students.
// The delete and the inserts share one transaction, so a failed save leaves
// the previous roster in place.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Save(students []types.Student) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("%w: Save: begin: %v", storage.ErrIO, err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM students"); err != nil {
		return fmt.Errorf("%w: Save: clear table: %v", storage.ErrIO, err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO students (position, roll_no, name, marks) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("%w: Save: prepare: %v", storage.ErrIO, err)
	}
	defer stmt.Close()

	for i, student := range students {
		// Argument order matches the ? order in the SQL.
		if _, err := stmt.Exec(i, student.RollNo, student.Name, student.Marks); err != nil {
			return fmt.Errorf("%w: Save: insert roll number %d: %v", storage.ErrIO, student.RollNo, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save: commit: %v", storage.ErrIO, err)
	}

	return nil
}
