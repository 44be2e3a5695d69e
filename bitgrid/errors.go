package bitgrid

import "errors"

// Sentinel errors for the bitgrid package.
var (
	// ErrBadDimensions indicates a non-positive width or height was passed
	// to New.
	ErrBadDimensions = errors.New("bitgrid: width and height must be positive")

	// ErrOutOfBounds indicates a coordinate passed to a checked accessor
	// falls outside the accessor's declared window: the padded window
	// -1..W+1 x -1..H+1 for reads (Get, Row, RowUpper), or the unpadded
	// window 0..W x 0..H for Set and Neighbours.
	ErrOutOfBounds = errors.New("bitgrid: coordinate out of bounds")
)
