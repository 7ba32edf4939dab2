// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles — the
// record store, the storage backends and the console handlers can all
// import types without depending on each other.
package types

// Student represents one student record.
//
// The validate:"..." tags are checked by go-playground/validator:
//
//   - Name must be non-empty ("required").
//   - RollNo must be zero or positive. It is deliberately NOT "required",
//     because 0 is a valid roll number and "required" rejects zero values.
//   - Marks must lie in [0,100], both ends inclusive.
type Student struct {
	Name   string  `json:"name"   validate:"required"`
	RollNo int     `json:"rollNo" validate:"gte=0"`
	Marks  float64 `json:"marks"  validate:"gte=0,lte=100"`
}

// Statistics summarises the marks of every student in a store.
type Statistics struct {
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}
