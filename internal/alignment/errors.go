package alignment

import "fmt"

// AlignmentError is the base error type for alignment operations.
type AlignmentError interface {
	error
	IsAlignmentError()
}

// EmptyInputError is returned when one of the sequences to align is empty.
// Side names the offending sequence, "x" or "y".
type EmptyInputError struct {
	Side string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("cannot fill score matrix: sequence %s is empty", e.Side)
}

func (e *EmptyInputError) IsAlignmentError() {}

// EmptyMatrixError is returned when a best-score scan runs on a matrix with
// a zero dimension.
type EmptyMatrixError struct{}

func (e *EmptyMatrixError) Error() string {
	return "cannot locate best score in an empty matrix"
}

func (e *EmptyMatrixError) IsAlignmentError() {}

// InvariantViolationError is returned when no traceback move reproduces a
// cell's score. It means the matrix, scorer and gap penalty passed to Trace
// do not belong together; results derived from such a walk would be
// corrupt, so callers must treat this error as fatal.
type InvariantViolationError struct {
	I     int
	J     int
	Score int64
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("no traceback move reproduces score %d at cell (%d, %d)", e.Score, e.I, e.J)
}

func (e *InvariantViolationError) IsAlignmentError() {}
