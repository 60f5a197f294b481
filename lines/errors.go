package lines

import "errors"

var (
	// ErrInvalidWidth is returned by New when the terminal width resolves
	// to zero or a negative number of columns.
	ErrInvalidWidth = errors.New("terminal width must be at least 1 column")

	// ErrUnregisteredLine is returned when a Line is not registered with
	// the session it is being rendered through.
	ErrUnregisteredLine = errors.New("line is not registered with this session")

	// ErrMissingParam is returned when a template placeholder has no
	// matching entry in the params map.
	ErrMissingParam = errors.New("missing template parameter")
)
