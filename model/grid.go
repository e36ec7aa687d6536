package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Coord addresses a single cell by zero-based column and row
type Coord struct {
	Col int
	Row int
}

// Grid is a fixed-size board of byte cells, stored as height rows of width columns
type Grid struct {
	width  int
	height int
	cells  [][]uint8
}

// newGrid creates an all-dead grid with the specified dimensions
func newGrid(width, height int) *Grid {
	data := make([]uint8, width*height)
	cells := make([][]uint8, height)
	for row := range cells {
		cells[row] = data[row*width : (row+1)*width : (row+1)*width]
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// inBounds reports whether the coordinate lies inside the grid
func (g *Grid) inBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.width && c.Row >= 0 && c.Row < g.height
}

// set writes a cell, callers validate the coordinate
func (g *Grid) set(c Coord, value uint8) {
	g.cells[c.Row][c.Col] = value
}

// clear kills every cell
func (g *Grid) clear() {
	for row := range g.cells {
		clear(g.cells[row])
	}
}

// countNeighborsBounded counts living neighbors, treating everything past the edges as dead
func (g *Grid) countNeighborsBounded(col, row int) int {
	count := 0

	// Each axis is clamped before any cell is touched
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)
	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)

	for ny := minRow; ny <= maxRow; ny++ {
		for nx := minCol; nx <= maxCol; nx++ {
			if nx == col && ny == row {
				continue
			}
			count += int(g.cells[ny][nx])
		}
	}

	return count
}

// countNeighborsWrapped counts living neighbors with opposite edges treated as adjacent
func (g *Grid) countNeighborsWrapped(col, row int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (row + dy + g.height) % g.height
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (col + dx + g.width) % g.width
			count += int(g.cells[ny][nx])
		}
	}
	return count
}

// stepRows writes the next generation of rows [startRow, endRow) into next
func (g *Grid) stepRows(next *Grid, startRow, endRow int, wrap bool) error {
	if next.width != g.width || next.height != g.height {
		return errors.Errorf("[stepRows] target is %dx%d, source %dx%d", next.width, next.height, g.width, g.height)
	}
	if startRow < 0 || startRow > endRow || endRow > g.height {
		return errors.Errorf("[stepRows] band [%d,%d) outside %d rows", startRow, endRow, g.height)
	}

	count := g.countNeighborsBounded
	if wrap {
		count = g.countNeighborsWrapped
	}
	for row := startRow; row < endRow; row++ {
		src, dst := g.cells[row], next.cells[row]
		for col := range src {
			dst[col] = rules.NextState(src[col], count(col, row))
		}
	}
	return nil
}

// View is a read-only window onto one of the engine's grids.
//
// A View shares storage with the engine, so it goes stale after the next Step or Clear.
type View struct {
	g *Grid
}

// Width returns the number of columns
func (v View) Width() int { return v.g.width }

// Height returns the number of rows
func (v View) Height() int { return v.g.height }

// At returns the raw cell value, 0 for out-of-range coordinates
func (v View) At(col, row int) uint8 {
	if !v.g.inBounds(Coord{Col: col, Row: row}) {
		return 0
	}
	return v.g.cells[row][col]
}

// Alive reports whether the cell is alive
func (v View) Alive(col, row int) bool {
	return v.At(col, row) != 0
}

// Row returns a copy of a single row
func (v View) Row(row int) []uint8 {
	if row < 0 || row >= v.g.height {
		return nil
	}
	return append([]uint8(nil), v.g.cells[row]...)
}

// Rows returns a height × width copy of the grid
func (v View) Rows() [][]uint8 {
	rows := make([][]uint8, v.g.height)
	for row := range rows {
		rows[row] = v.Row(row)
	}
	return rows
}

// LiveCells returns the coordinates of every living cell in row-major order
func (v View) LiveCells() (live []Coord) {
	for row := range v.g.height {
		for col := range v.g.width {
			if v.g.cells[row][col] != 0 {
				live = append(live, Coord{Col: col, Row: row})
			}
		}
	}
	return
}

// Population returns the total number of living cells
func (v View) Population() (count int) {
	for row := range v.g.height {
		for col := range v.g.width {
			count += int(v.g.cells[row][col])
		}
	}
	return
}

// Hash returns an MD5 digest of the grid state
func (v View) Hash() string {
	h := md5.New()
	for row := range v.g.height {
		h.Write(v.g.cells[row])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the rows as bit strings separated by '/', e.g. "010/010/010"
func (v View) String() string {
	var sb strings.Builder
	sb.Grow(v.g.height * (v.g.width + 1))
	for row := range v.g.height {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := range v.g.width {
			sb.WriteByte('0' + v.g.cells[row][col])
		}
	}
	return sb.String()
}
