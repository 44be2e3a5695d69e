// Package mapfile parses the line-oriented obstacle-map text format:
//
//	type octile
//	height H
//	width W
//	map
//	<H lines of W characters>
//
// where '@', 'O', and 'T' mark obstructed cells and any other character
// marks a free one.
package mapfile
