package response

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aanand-mishra/students/internal/types"
)

func TestStudents(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		Students(&buf, nil)
		assert.Equal(t, MsgNoStudents+"\n", buf.String())
	})

	t.Run("table rows in order", func(t *testing.T) {
		var buf bytes.Buffer
		Students(&buf, []types.Student{
			{Name: "Alice", RollNo: 1, Marks: 88.5},
			{Name: "Bob", RollNo: 2, Marks: 42},
		})

		out := buf.String()
		assert.Contains(t, out, "Name")
		assert.Contains(t, out, "Roll No")
		assert.Contains(t, out, "Alice               1         88.5")
		assert.Contains(t, out, "Bob                 2         42")
		assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))
	})
}

func TestStatistics(t *testing.T) {
	var buf bytes.Buffer
	Statistics(&buf, types.Statistics{Count: 3, Average: 70, Max: 90, Min: 50})

	out := buf.String()
	assert.Contains(t, out, "Total Students: 3")
	assert.Contains(t, out, "Average Marks: 70.00")
	assert.Contains(t, out, "Highest Marks: 90")
	assert.Contains(t, out, "Lowest Marks: 50")
}

func TestMessages(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("student not found"))
	Warning(&buf, errors.New("corrupted data"))
	Success(&buf, "Student added successfully!")

	out := buf.String()
	assert.Contains(t, out, "Error: student not found")
	assert.Contains(t, out, "Warning: corrupted data")
	assert.Contains(t, out, "Student added successfully!")
}

func TestFormatMarks(t *testing.T) {
	assert.Equal(t, "88.5", FormatMarks(88.5))
	assert.Equal(t, "42", FormatMarks(42))
	assert.Equal(t, "0", FormatMarks(0))
	assert.Equal(t, "99.99", FormatMarks(99.99))
}

type wrapped struct{ w io.Writer }

func (w wrapped) Write(p []byte) (int, error) { return w.w.Write(p) }
func (w wrapped) Unwrap() io.Writer          { return w.w }

func TestMessages_ThroughWrappedWriter(t *testing.T) {
	var buf bytes.Buffer
	Error(wrapped{w: &buf}, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
