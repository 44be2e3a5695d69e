// Package region answers cheap reachability questions about a bitgrid.Grid
// without running a full weighted search: Reachable floods outward from a
// source cell over unblocked, eight-connected neighbours and reports
// whether a goal cell is in the same component. Useful as a fast precheck
// before handing a grid to search.Engine, to short-circuit the "genuinely
// no path exists" case without paying for heap operations and a heuristic.
package region
