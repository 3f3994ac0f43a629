package screening

import "errors"

var (
	// ErrInvalidCriteria indicates a constraint value outside its allowed range.
	ErrInvalidCriteria = errors.New("invalid filter criteria")
)
