// Package bitgrid implements a bit-packed rectangular obstacle grid: one bit
// per cell, true meaning blocked. Around the W x H playable area it
// maintains a permanent one-cell padding ring (coordinates -1 and W, -1 and
// H) that always reads as blocked, plus head and tail guard bytes so that
// the grid's neighbourhood and row-scan reads can be done as plain 8-byte
// little-endian loads without ever touching memory outside the backing
// slice.
//
// Grid is the domain both grid expansion policies (expand.NoCornerCutting,
// expand.JPS) are built on. JPS additionally needs Transpose, which produces
// an independent grid with X and Y swapped so that vertical jump scans can
// reuse the same horizontal scanning code as horizontal ones.
package bitgrid
