package paginator

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is matched by every *InvalidRangeError via errors.Is.
var ErrInvalidRange = errors.New("invalid pagination range")

// InvalidRangeError reports a page state argument outside its allowed bounds.
// Max is zero when the field has no upper bound.
type InvalidRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *InvalidRangeError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("%s: %s=%d outside [%d, %d]", ErrInvalidRange, e.Field, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("%s: %s=%d below minimum %d", ErrInvalidRange, e.Field, e.Value, e.Min)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
