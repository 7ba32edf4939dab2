// Package textfile provides a plain-text implementation of the
// storage.Storage interface.
//
// FILE FORMAT
// ───────────
// The file is newline-delimited with one field per line and three lines
// per student, repeated with no header, count, checksum or version:
//
//	Alice
//	1
//	88.5
//	Bob
//	2
//	42
//
// Names are not escaped. A name containing a newline shifts every
// following field and makes the file unreadable on the next load.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/aanand-mishra/students/internal/storage"
	"github.com/aanand-mishra/students/internal/types"
)

// TextFile is the concrete implementation of storage.Storage.
// It holds nothing but the path; the file is opened, fully read or fully
// written, and closed inside each call.
type TextFile struct {
	Path string
}

// New returns a TextFile backend for the file at path.
func New(path string) *TextFile {
	return &TextFile{Path: path}
}

// Load reads every student from the file. A missing file is not an error:
// it yields an empty roster. On a parse failure everything read so far is
// discarded and the error wraps storage.ErrCorrupt.
func (t *TextFile) Load() ([]types.Student, error) {
	f, err := os.Open(t.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []types.Student{}, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", storage.ErrIO, t.Path, err)
	}
	defer f.Close()

	students := make([]types.Student, 0)
	dec := NewDecoder(f)

	for {
		s, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Load %s: %w", t.Path, err)
		}
		students = append(students, s)
	}

	return students, nil
}

// Save truncates (or creates) the file and writes every student in order.
// A failure partway leaves a partial file behind; there is no temp-file
// and rename step.
func (t *TextFile) Save(students []types.Student) error {
	f, err := os.Create(t.Path)
	if err != nil {
		return fmt.Errorf("%w: cannot create data file %s: %v", storage.ErrIO, t.Path, err)
	}

	w := bufio.NewWriter(f)
	for _, s := range students {
		if _, err := w.WriteString(Encode(s)); err != nil {
			f.Close()
			return fmt.Errorf("%w: failed to write student %d: %v", storage.ErrIO, s.RollNo, err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("%w: flush %s: %v", storage.ErrIO, t.Path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", storage.ErrIO, t.Path, err)
	}

	return nil
}
