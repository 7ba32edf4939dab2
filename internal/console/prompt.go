package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when typed input cannot be parsed as the
// requested kind of value.
var ErrInvalidInput = errors.New("invalid input")

// Prompter writes a prompt and reads one line of answer per call.
// Input is line based, so a bad answer never leaves stray tokens behind for
// the next prompt.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewPrompter returns a Prompter reading answers from r and writing prompts
// to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints label and returns the next input line with surrounding
// whitespace removed. It returns io.EOF once input is exhausted.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.w, label)

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Int prompts for an integer. field names the value in error messages.
func (p *Prompter) Int(label, field string) (int, error) {
	raw, err := p.Line(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w for %s", ErrInvalidInput, field)
	}
	return n, nil
}

// Float prompts for a floating-point number. NaN and infinities are
// rejected as input.
func (p *Prompter) Float(label, field string) (float64, error) {
	raw, err := p.Line(label)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w for %s", ErrInvalidInput, field)
	}
	return f, nil
}
