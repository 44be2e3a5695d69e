package mapfile

import "errors"

// ErrMalformed indicates the input does not follow the type/height/width/map
// header sequence, or a map row's length or count does not match the
// declared dimensions.
var ErrMalformed = errors.New("mapfile: malformed map file")
