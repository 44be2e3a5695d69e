package bitgrid

import (
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/bitpath/core"
)

// Cell identifies a grid cell by its coordinates. It is the vertex identity
// type used throughout the grid expansion policies and the node pools built
// over them.
type Cell struct {
	X, Y int
}

// rowMask keeps the low 57 bits of a word. 57 = 64 - 7: the seven spare bits
// at the top give a forced-neighbour shift (bits<<1) room to move without
// wrapping across a word boundary, and leave RowUpper's mirror shift
// (bits>>1, from the other end) the same margin.
const rowMask = (uint64(1) << 57) - 1

// Grid is a bit-packed obstacle grid of fixed size. The zero value is not
// usable; construct one with New.
type Grid struct {
	width, height int
	paddedWidth   int
	paddedHeight  int
	cells         []byte
}

// headGuard and tailGuard are the number of spare bytes kept before and
// after the real padded-grid bitstream so that an unaligned 8-byte read
// centred on any in-bounds coordinate never runs off the end of cells.
const headGuard = 8
const tailGuard = 8

// New allocates a width x height grid with every cell initially clear
// (unblocked) and the permanent padding ring set. Returns ErrBadDimensions
// if width or height is not positive.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	paddedWidth := width + 2
	paddedHeight := height + 2
	totalBits := paddedWidth * paddedHeight
	totalBytes := (totalBits + 7) / 8

	g := &Grid{
		width:        width,
		height:       height,
		paddedWidth:  paddedWidth,
		paddedHeight: paddedHeight,
		cells:        make([]byte, headGuard+totalBytes+tailGuard),
	}

	for i := range g.cells {
		g.cells[i] = 0xff
	}
	for i := 0; i < totalBytes; i++ {
		g.cells[headGuard+i] = 0
	}

	for x := -1; x <= width; x++ {
		g.setUnchecked(x, -1, true)
		g.setUnchecked(x, height, true)
	}
	for y := -1; y <= height; y++ {
		g.setUnchecked(-1, y, true)
		g.setUnchecked(width, y, true)
	}

	return g, nil
}

// Width returns the grid's unpadded width.
func (g *Grid) Width() int { return g.width }

// Height returns the grid's unpadded height.
func (g *Grid) Height() int { return g.height }

// locate returns the byte index (already offset past the head guard) and
// bit offset within that byte for coordinate (x, y). x must lie in
// -1..width, y in -1..height; the caller is responsible for the check.
func (g *Grid) locate(x, y int) (idx int, bit uint) {
	paddedX := x + 1
	paddedY := y + 1
	bitIndex := paddedY*g.paddedWidth + paddedX
	return headGuard + bitIndex/8, uint(bitIndex % 8)
}

func paddedInBounds(x, y, width, height int) bool {
	return x >= -1 && x <= width && y >= -1 && y <= height
}

func unpaddedInBounds(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// GetUnchecked reports whether (x, y) is blocked, without bounds checking.
// The caller must guarantee x in -1..Width, y in -1..Height.
func (g *Grid) GetUnchecked(x, y int) bool {
	idx, bit := g.locate(x, y)
	return g.cells[idx]&(1<<bit) != 0
}

// Get reports whether (x, y) is blocked. Panics with ErrOutOfBounds if (x,
// y) falls outside the padded window -1..Width x -1..Height.
func (g *Grid) Get(x, y int) bool {
	if !paddedInBounds(x, y, g.width, g.height) {
		panic(fmt.Errorf("%w: Get(%d, %d)", ErrOutOfBounds, x, y))
	}
	return g.GetUnchecked(x, y)
}

func (g *Grid) setUnchecked(x, y int, blocked bool) {
	idx, bit := g.locate(x, y)
	if blocked {
		g.cells[idx] |= 1 << bit
	} else {
		g.cells[idx] &^= 1 << bit
	}
}

// Set marks (x, y) blocked or clear. Panics with ErrOutOfBounds if (x, y)
// falls outside the unpadded window 0..Width x 0..Height; the padding ring
// itself is never mutable through Set.
func (g *Grid) Set(x, y int, blocked bool) {
	if !unpaddedInBounds(x, y, g.width, g.height) {
		panic(fmt.Errorf("%w: Set(%d, %d)", ErrOutOfBounds, x, y))
	}
	g.setUnchecked(x, y, blocked)
}

// RowUnchecked returns 57 bits of row y starting at column x, bit i of the
// result describing column x+i; columns past the right padding column read
// as blocked. The caller must guarantee x in -1..Width, y in -1..Height.
func (g *Grid) RowUnchecked(x, y int) uint64 {
	idx, bit := g.locate(x, y)
	word := binary.LittleEndian.Uint64(g.cells[idx : idx+8])
	row := (word >> bit) & rowMask
	if valid := g.width + 1 - x; valid < 57 {
		row |= rowMask &^ (uint64(1)<<uint(valid) - 1)
	}
	return row
}

// Row is the bounds-checked form of RowUnchecked.
func (g *Grid) Row(x, y int) uint64 {
	if !paddedInBounds(x, y, g.width, g.height) {
		panic(fmt.Errorf("%w: Row(%d, %d)", ErrOutOfBounds, x, y))
	}
	return g.RowUnchecked(x, y)
}

// RowUpperUnchecked returns 57 bits of row y ending at column x (inclusive),
// packed into the upper 57 bits of the result: bit 63 describes column x,
// bit 7 describes column x-56, and the low 7 bits are always zero; columns
// before the left padding column read as blocked. The caller must guarantee
// x in -1..Width, y in -1..Height.
func (g *Grid) RowUpperUnchecked(x, y int) uint64 {
	idx, bit := g.locate(x, y)
	word := binary.LittleEndian.Uint64(g.cells[idx-7 : idx+1])
	row := (word << (7 - bit)) &^ uint64(0x7f)
	if valid := x + 2; valid < 57 {
		row |= (^uint64(0) >> uint(valid)) &^ uint64(0x7f)
	}
	return row
}

// RowUpper is the bounds-checked form of RowUpperUnchecked.
func (g *Grid) RowUpper(x, y int) uint64 {
	if !paddedInBounds(x, y, g.width, g.height) {
		panic(fmt.Errorf("%w: RowUpper(%d, %d)", ErrOutOfBounds, x, y))
	}
	return g.RowUpperUnchecked(x, y)
}

// NeighboursUnchecked packs the obstruction state of the eight cells
// surrounding (x, y) into a core.DirectionSet, using the bit order NW, N,
// NE, W, E, SW, S, SE. The caller must guarantee x in 0..Width, y in
// 0..Height (the centre cell itself must be unpadded, though its
// neighbours may reach into the padding ring).
func (g *Grid) NeighboursUnchecked(x, y int) core.DirectionSet {
	above := g.RowUnchecked(x-1, y-1)
	middle := g.RowUnchecked(x-1, y)
	below := g.RowUnchecked(x-1, y+1)

	bits := (above & 0b111) |
		((middle & 0b1) << 3) |
		((middle & 0b100) << 2) |
		((below & 0b111) << 5)

	return core.DirectionSet(bits)
}

// Neighbours is the bounds-checked form of NeighboursUnchecked.
func (g *Grid) Neighbours(x, y int) core.DirectionSet {
	if !unpaddedInBounds(x, y, g.width, g.height) {
		panic(fmt.Errorf("%w: Neighbours(%d, %d)", ErrOutOfBounds, x, y))
	}
	return g.NeighboursUnchecked(x, y)
}

// Transpose returns a new grid with X and Y swapped: cell (x, y) of the
// result is blocked iff cell (y, x) of g is blocked. JPS expanders use this
// to run vertical jump scans through the same horizontal scanning code used
// for horizontal ones.
func (g *Grid) Transpose() *Grid {
	t, err := New(g.height, g.width)
	if err != nil {
		// g is already a valid Grid, so its dimensions swapped are too.
		panic(err)
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.GetUnchecked(x, y) {
				t.setUnchecked(y, x, true)
			}
		}
	}
	return t
}
