package scenario

import "errors"

// ErrMalformed indicates the input's version header or a record line does
// not match the expected format.
var ErrMalformed = errors.New("scenario: malformed scenario file")
