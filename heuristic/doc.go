// Package heuristic provides the distance estimators search.Engine uses to
// run as A* instead of plain Dijkstra. Octile is admissible for
// bitgrid-based searches using NoCornerCutting/JPS, Manhattan only for
// four-direction unit-cost movement, and Euclidean for any of these; Zero
// turns the engine into Dijkstra.
package heuristic
