package vecslice

import (
	"fmt"
)

// ErrValueLengthMismatch indicates an assignment whose value count is
// neither the number of resolved locations nor 1 (broadcast).
type ErrValueLengthMismatch struct {
	Values    int
	Locations int
}

func (e *ErrValueLengthMismatch) Error() string {
	return fmt.Sprintf("cannot assign %d values to %d locations", e.Values, e.Locations)
}
