// Package expand provides ExpansionPolicy implementations search.Engine
// drives: NoCornerCutting, an eight-direction grid expander that forbids
// cutting across a blocked corner, and JPS, a jump point search expander
// that prunes symmetric paths and jumps across runs of unobstructed cells
// using bit-parallel row scans.
//
// Both are built on bitgrid.Grid and emit core.Edge values into a
// caller-supplied buffer, matching the search.ExpansionPolicy contract.
package expand
