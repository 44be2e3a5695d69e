package mapgen

import "errors"

// ErrInvalidDensity indicates a probability outside the closed interval
// [0, 1] was passed to RandomObstacles.
var ErrInvalidDensity = errors.New("mapgen: density must be within [0, 1]")
