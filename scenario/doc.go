// Package scenario parses the line-oriented scenario text format:
//
//	version 1
//	<bucket> <map-name> <map-W> <map-H> <start-x> <start-y> <goal-x> <goal-y> <expected-length>
//
// one record per non-empty line after the version header.
package scenario
