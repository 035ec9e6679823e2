package tensor

import "github.com/pkg/errors"

// Errors returned by the tensor constructors. They are wrapped with the
// offending shapes; test with errors.Is.
var (
	ErrElementCount      = errors.New("element count does not match shape")
	ErrIncompatibleShape = errors.New("runtime shape does not match shape type")
	ErrAmbiguousShape    = errors.New("cannot infer more than one dynamic axis")
	ErrInvalidShape      = errors.New("invalid shape")
)
