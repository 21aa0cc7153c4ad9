package program

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/ezrec/isacodec/translate"
)

var f = translate.From

var (
	ErrTruncated = errors.New(f("image ends inside a word"))
)

// NoAddress marks an Error without an instruction address.
const NoAddress = -1

// Error locates a failure within a program.
type Error struct {
	LineNo  int   // Source line, 1-based. Zero if unknown.
	Address int   // Instruction address, or NoAddress.
	Err     error // Underlying isa error.
}

func (err *Error) Error() string {
	switch {
	case err.LineNo > 0:
		return f("line %d %v", err.LineNo, err.Err)
	case err.Address != NoAddress:
		return f("[Address %d] %v", err.Address, err.Err)
	default:
		return err.Err.Error()
	}
}

func (err *Error) Unwrap() error {
	return err.Err
}

// Description returns the message of the underlying error.
func (err *Error) Description() string {
	return err.Err.Error()
}

func (err *Error) compare(other *Error) int {
	if c := cmp.Compare(err.LineNo, other.LineNo); c != 0 {
		return c
	}
	return cmp.Compare(err.Address, other.Address)
}

// Errors is the list of failures of one pass, ordered by position.
type Errors []*Error

func (errs Errors) Error() string {
	lines := make([]string, len(errs))
	for n, err := range errs {
		lines[n] = err.Error()
	}
	return strings.Join(lines, "\n")
}

func (errs Errors) Unwrap() []error {
	list := make([]error, len(errs))
	for n, err := range errs {
		list[n] = err
	}
	return list
}

// collect gathers the non-nil entries of a position indexed list.
func collect(failed []*Error) (errs Errors) {
	for _, err := range failed {
		if err != nil {
			errs = append(errs, err)
		}
	}

	slices.SortStableFunc(errs, (*Error).compare)

	return
}
