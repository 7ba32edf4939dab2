// Package console runs the interactive numbered menu.
//
// It plays the role an http.ServeMux plays for a web service: handlers are
// registered against menu entries, the loop reads the user's choice and
// dispatches to the matching handler, and any error a handler returns is
// printed as a one-line message before the menu is shown again. A failed
// command never ends the session; only the Exit entry, the end of input or
// a cancelled context do.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/aanand-mishra/students/internal/utils/response"
)

// HandlerFunc executes one menu command. It reads any extra input through
// in and writes its results to out.
type HandlerFunc func(in *Prompter, out io.Writer) error

type entry struct {
	label   string
	handler HandlerFunc
}

// Console is the menu router and loop.
type Console struct {
	title   string
	entries []entry
	in      *Prompter
	out     io.Writer
	log     *slog.Logger
}

// New returns a Console reading from in and writing to out.
func New(title string, in io.Reader, out io.Writer, log *slog.Logger) *Console {
	return &Console{
		title: title,
		in:    NewPrompter(in, out),
		out:   out,
		log:   log,
	}
}

// Handle registers h as the next numbered menu entry. Entries are numbered
// from 1 in registration order; Exit is always listed last.
func (c *Console) Handle(label string, h HandlerFunc) {
	c.entries = append(c.entries, entry{label: label, handler: h})
}

// Run shows the menu until the user picks Exit, input ends, or ctx is
// cancelled. Handler errors are reported and the loop continues. Run only
// returns an error when ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	exitChoice := len(c.entries) + 1

	response.Title(c.out, "=== "+c.title+" ===")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu(exitChoice)

		raw, err := c.in.Line(fmt.Sprintf("Enter your choice (1-%d): ", exitChoice))
		if errors.Is(err, io.EOF) {
			c.log.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			response.Error(c.out, err)
			return nil
		}

		choice, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c.out, errors.New("invalid menu choice"))
			continue
		}

		if choice == exitChoice {
			fmt.Fprintln(c.out, "Exiting... Thank you for using the system!")
			return nil
		}

		if choice < 1 || choice > len(c.entries) {
			fmt.Fprintf(c.out, "Invalid choice! Please enter 1-%d.\n", exitChoice)
			continue
		}

		e := c.entries[choice-1]
		c.log.Debug("menu command", slog.Int("choice", choice), slog.String("command", e.label))

		if err := e.handler(c.in, c.out); err != nil {
			if errors.Is(err, io.EOF) {
				c.log.Debug("input closed mid-command, leaving menu")
				return nil
			}
			c.log.Warn("command failed",
				slog.String("command", e.label),
				slog.String("error", err.Error()))
			response.Error(c.out, err)
		}
	}
}

func (c *Console) printMenu(exitChoice int) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Main Menu:")
	for i, e := range c.entries {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, e.label)
	}
	fmt.Fprintf(c.out, "%d. Exit\n", exitChoice)
}
