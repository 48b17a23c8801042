package personas

import "errors"

var (
	ErrNotFound  = errors.New("persona not found")
	ErrMalformed = errors.New("persona document malformed")
)
