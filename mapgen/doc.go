// Package mapgen generates synthetic bitgrid.Grid maps for testing and
// benchmarking the search engine and its expansion policies against
// obstacle densities and shapes that are awkward to hand-author.
package mapgen
