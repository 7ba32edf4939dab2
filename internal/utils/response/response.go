// Package response provides helpers for writing consistent console output.
//
// Every handler in this application prints something back to the user.
// Rather than repeating the same formatting in every handler, we centralise
// it here: tables of students, the statistics block, and one-line success,
// warning and error messages.
//
// Styling uses lipgloss. When the output is not a terminal (pipes, files,
// buffers) no escape sequences are written, so the text stays plain.
package response

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/aanand-mishra/students/internal/types"
)

// Column widths of the student table.
const (
	nameWidth   = 20
	rollNoWidth = 10
	marksWidth  = 10
)

// styles holds the lipgloss styles bound to one output. The renderer looks
// at that writer, not at os.Stdout, to decide whether colours are supported.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
}

func stylesFor(w io.Writer) styles {
	// Wrapping writers hide the terminal; detect on the innermost one.
	for {
		u, ok := w.(interface{ Unwrap() io.Writer })
		if !ok {
			break
		}
		w = u.Unwrap()
	}

	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("2")),
		warning: r.NewStyle().Foreground(lipgloss.Color("3")),
		err:     r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// MsgNoStudents is printed whenever there is nothing to list or summarise.
const MsgNoStudents = "No students found!"

// Title writes a bold heading line.
func Title(w io.Writer, text string) {
	fmt.Fprintln(w, stylesFor(w).title.Render(text))
}

// Success writes a confirmation line.
func Success(w io.Writer, text string) {
	fmt.Fprintln(w, stylesFor(w).success.Render(text))
}

// Warning writes a "Warning: ..." line for non-fatal problems.
func Warning(w io.Writer, err error) {
	fmt.Fprintln(w, stylesFor(w).warning.Render("Warning: "+err.Error()))
}

// Error writes an "Error: ..." line.
func Error(w io.Writer, err error) {
	fmt.Fprintln(w, stylesFor(w).err.Render("Error: "+err.Error()))
}

// ─────────────────────────────────────────────────────────────────────────────
// Students writes a fixed-width table:
//
//	Name                Roll No   Marks
//	----------------------------------------
//	Alice               1         88.5
//
// An empty slice prints MsgNoStudents instead of an empty table.
// ─────────────────────────────────────────────────────────────────────────────
func Students(w io.Writer, students []types.Student) {
	if len(students) == 0 {
		fmt.Fprintln(w, MsgNoStudents)
		return
	}

	fmt.Fprintln(w, stylesFor(w).title.Render(row("Name", "Roll No", "Marks")))
	fmt.Fprintln(w, "----------------------------------------")
	for _, s := range students {
		fmt.Fprintln(w, row(s.Name, strconv.Itoa(s.RollNo), FormatMarks(s.Marks)))
	}
}

// Statistics writes the summary block. Average is rounded to two decimals.
func Statistics(w io.Writer, stats types.Statistics) {
	Title(w, "--- Statistics ---")
	fmt.Fprintf(w, "Total Students: %d\n", stats.Count)
	fmt.Fprintf(w, "Average Marks: %.2f\n", stats.Average)
	fmt.Fprintf(w, "Highest Marks: %s\n", FormatMarks(stats.Max))
	fmt.Fprintf(w, "Lowest Marks: %s\n", FormatMarks(stats.Min))
}

// FormatMarks renders marks without trailing zeros: 88.5, 42, 99.99.
func FormatMarks(marks float64) string {
	return strconv.FormatFloat(marks, 'f', -1, 64)
}

func row(name, rollNo, marks string) string {
	return fmt.Sprintf("%-*s%-*s%-*s", nameWidth, name, rollNoWidth, rollNo, marksWidth, marks)
}
