package expand

import "errors"

// ErrBadConstruction is returned by an expander constructor when its
// arguments are inconsistent, e.g. a transpose grid whose dimensions do not
// match its source grid's swapped dimensions.
var ErrBadConstruction = errors.New("expand: inconsistent expander construction")
