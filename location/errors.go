package location

import (
	"errors"
	"fmt"
)

var (
	// ErrNamesRequired is returned when a Names specifier is resolved
	// without a name table.
	ErrNamesRequired = errors.New("name locations require a name table")
)

// ErrOutOfBounds indicates a position outside [1, n].
type ErrOutOfBounds struct {
	Location int
	Length   int
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("location %d is out of bounds for length %d", e.Location, e.Length)
}

// ErrMixedSigns indicates a Positions specifier mixing strictly-positive and
// strictly-negative entries.
type ErrMixedSigns struct {
	Positive int
	Negative int
}

func (e *ErrMixedSigns) Error() string {
	return fmt.Sprintf("locations must be all positive or all negative, got %d and %d", e.Positive, e.Negative)
}

// ErrNegativeNotAllowed indicates a negative position when negative
// conversion is disabled.
type ErrNegativeNotAllowed struct {
	Location int
}

func (e *ErrNegativeNotAllowed) Error() string {
	return fmt.Sprintf("negative location %d is not allowed", e.Location)
}

// ErrMaskLengthMismatch indicates a mask that is neither the target length
// nor a single broadcast value.
type ErrMaskLengthMismatch struct {
	MaskLength int
	Length     int
}

func (e *ErrMaskLengthMismatch) Error() string {
	return fmt.Sprintf("mask length %d does not match length %d", e.MaskLength, e.Length)
}

// ErrNameNotFound indicates a requested name absent from the name table.
type ErrNameNotFound struct {
	Name string
}

func (e *ErrNameNotFound) Error() string {
	return fmt.Sprintf("name %q not found", e.Name)
}

// ErrMissingLocation indicates a missing placeholder entry in a Positions
// specifier under the MissingError policy. Index is the one-based position
// of the placeholder within the specifier.
type ErrMissingLocation struct {
	Index int
}

func (e *ErrMissingLocation) Error() string {
	return fmt.Sprintf("missing location at position %d", e.Index)
}
