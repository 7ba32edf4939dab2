package records

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation is returned when a field is out of range or a roll
	// number is already taken.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when no student has the given roll number.
	ErrNotFound = errors.New("student not found")

	// ErrEmpty is returned by Statistics on a store with no students.
	ErrEmpty = errors.New("no students found")
)

// validationError converts validator.ValidationErrors into one sentence per
// failing field, joined with ", ", and wraps ErrValidation.
//
// Example:
//
//	validation failed: name cannot be empty, marks must be between 0 and 100
func validationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var msgs []string
	for _, e := range errs {
		switch e.Field() {
		case "Name":
			msgs = append(msgs, "name cannot be empty")
		case "RollNo":
			msgs = append(msgs, "roll number cannot be negative")
		case "Marks":
			msgs = append(msgs, "marks must be between 0 and 100")
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, ", "))
}
