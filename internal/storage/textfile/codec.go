package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students/internal/storage"
	"github.com/aanand-mishra/students/internal/types"
)

// linesPerRecord is the number of lines one student occupies on disk.
const linesPerRecord = 3

// Encode renders one student in the on-disk layout:
//
//	<name>
//	<rollNo>
//	<marks>
//
// Marks use the shortest decimal form that parses back to the same value.
func Encode(s types.Student) string {
	var b strings.Builder
	b.WriteString(s.Name)
	b.WriteByte('\n')
	b.WriteString(strconv.Itoa(s.RollNo))
	b.WriteByte('\n')
	b.WriteString(strconv.FormatFloat(s.Marks, 'f', -1, 64))
	b.WriteByte('\n')
	return b.String()
}

// Decode parses exactly one encoded student. The trailing newline after the
// marks line is optional.
func Decode(text string) (types.Student, error) {
	dec := NewDecoder(strings.NewReader(text))

	s, err := dec.Decode()
	if errors.Is(err, io.EOF) {
		return types.Student{}, fmt.Errorf("%w: empty record", storage.ErrCorrupt)
	}
	if err != nil {
		return types.Student{}, err
	}

	if _, err := dec.Decode(); !errors.Is(err, io.EOF) {
		return types.Student{}, fmt.Errorf("%w: trailing data after record", storage.ErrCorrupt)
	}
	return s, nil
}

// Decoder reads consecutive encoded students from a stream. Lines may be
// of any length.
type Decoder struct {
	r    *bufio.Reader
	line int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Decode reads the next student. It returns io.EOF when the input ends
// cleanly on a record boundary, and an error wrapping storage.ErrCorrupt
// when a record is truncated or a numeric field does not parse.
func (d *Decoder) Decode() (types.Student, error) {
	var fields [linesPerRecord]string

	for i := range fields {
		text, err := d.readLine()
		if errors.Is(err, io.EOF) {
			if i == 0 {
				return types.Student{}, io.EOF
			}
			return types.Student{}, fmt.Errorf("%w: line %d: record truncated", storage.ErrCorrupt, d.line+1)
		}
		if err != nil {
			return types.Student{}, fmt.Errorf("%w: line %d: %v", storage.ErrIO, d.line+1, err)
		}
		d.line++
		fields[i] = text
	}

	rollNo, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return types.Student{}, fmt.Errorf("%w: line %d: failed to read roll number %q", storage.ErrCorrupt, d.line-1, fields[1])
	}

	marks, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return types.Student{}, fmt.Errorf("%w: line %d: failed to read marks %q", storage.ErrCorrupt, d.line, fields[2])
	}

	return types.Student{Name: fields[0], RollNo: rollNo, Marks: marks}, nil
}

// readLine returns the next line without its \n or \r\n terminator. A final
// line with no terminator still counts; io.EOF means nothing was left.
func (d *Decoder) readLine() (string, error) {
	text, err := d.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", err
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
