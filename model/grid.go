package model

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-fixpoint/rules"
)

// ErrInvalidGrid is returned for seeds that are empty or ragged
var ErrInvalidGrid = errors.New("invalid grid")

// Grid represents the game board: a fixed height x width block of cells
// indexed by (row, column)
type Grid struct {
	height int
	width  int
	cells  [][]rules.Cell
}

// NewGrid creates a grid from seed rows, copying them. Every row must have the
// same, non-zero length.
func NewGrid(rows [][]rules.Cell) (*Grid, error) {
	if err := checkShape(len(rows), func(r int) int { return len(rows[r]) }); err != nil {
		return nil, errors.WithMessage(err, "[NewGrid]")
	}
	g := newBlankGrid(len(rows), len(rows[0]))
	for r := range rows {
		copy(g.cells[r], rows[r])
	}
	return g, nil
}

// NewGridFromInts creates a grid from 0/1 literals
func NewGridFromInts(rows [][]int) (*Grid, error) {
	if err := checkShape(len(rows), func(r int) int { return len(rows[r]) }); err != nil {
		return nil, errors.WithMessage(err, "[NewGridFromInts]")
	}
	g := newBlankGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		for c, v := range row {
			cell, err := rules.CellFromInt(v)
			if err != nil {
				return nil, errors.Wrapf(ErrInvalidGrid, "[NewGridFromInts] cell (%d,%d): %v", r, c, err)
			}
			g.cells[r][c] = cell
		}
	}
	return g, nil
}

func checkShape(height int, rowLen func(r int) int) error {
	if height == 0 {
		return errors.Wrap(ErrInvalidGrid, "grid has no rows")
	}
	width := rowLen(0)
	if width == 0 {
		return errors.Wrap(ErrInvalidGrid, "grid has no columns")
	}
	for r := 1; r < height; r++ {
		if n := rowLen(r); n != width {
			return errors.Wrapf(ErrInvalidGrid, "row %d has %d cells, want %d", r, n, width)
		}
	}
	return nil
}

// newBlankGrid allocates an all-dead grid
func newBlankGrid(height, width int) *Grid {
	g := &Grid{}
	g.Reset(height, width)
	return g
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Reset resizes the grid and kills every cell, reusing storage where it can
func (g *Grid) Reset(height, width int) {
	g.height = height
	g.width = width

	if len(g.cells) != height {
		g.cells = make([][]rules.Cell, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]rules.Cell, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills all cells
func (g *Grid) Clear() {
	for r := range g.cells {
		clear(g.cells[r])
	}
}

// Set sets the cell at (row, col); out of range positions are ignored
func (g *Grid) Set(row, col int, cell rules.Cell) {
	if g.inBounds(row, col) {
		g.cells[row][col] = cell
	}
}

// Get returns the cell at (row, col); out of range positions read as dead
func (g *Grid) Get(row, col int) rules.Cell {
	if !g.inBounds(row, col) {
		return rules.Dead
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CountNeighbors counts living cells in the Moore neighborhood of (row, col).
// The boundary does not wrap: positions off the grid are absent, so a corner
// sees at most 3 neighbors and an edge at most 5.
func (g *Grid) CountNeighbors(row, col int) int {
	count := 0

	minR := max(0, row-1)
	maxR := min(g.height-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.width-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if r == row && c == col {
				continue
			}
			if g.cells[r][c] == rules.Alive {
				count++
			}
		}
	}

	return count
}

// nextRows writes generation n+1 for rows [startRow, endRow) into next,
// reading only from g
func (g *Grid) nextRows(next *Grid, startRow, endRow int) {
	for r := startRow; r < endRow; r++ {
		for c := 0; c < g.width; c++ {
			next.cells[r][c] = rules.ApplyConwayRules(g.CountNeighbors(r, c), g.cells[r][c])
		}
	}
}

// NextGeneration calculates the next generation with a single serial scan
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	next := pool.GetLike(g)
	g.nextRows(next, 0, g.height)
	return next
}

// NextGenerationParallel calculates the next generation using parallel processing.
// Workers read the receiver only and write disjoint row bands of the result.
func (g *Grid) NextGenerationParallel(pool *GridPool) *Grid {
	next := pool.GetLike(g)

	var (
		eg            errgroup.Group
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (g.height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.nextRows(next, startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is the join
	eg.Wait()

	return next
}

// Equal reports whether both grids have the same dimensions and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.height != other.height || g.width != other.width {
		return false
	}
	for r := range g.height {
		for c := range g.width {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy
func (g *Grid) Clone() *Grid {
	out := newBlankGrid(g.height, g.width)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Rows returns a copy of the cells
func (g *Grid) Rows() [][]rules.Cell {
	return g.Clone().cells
}

// Ints returns the cells as 0/1 literals
func (g *Grid) Ints() [][]int {
	out := make([][]int, g.height)
	for r := range g.height {
		out[r] = make([]int, g.width)
		for c := range g.width {
			out[r][c] = int(g.cells[r][c])
		}
	}
	return out
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.height {
		for c := range g.width {
			if g.cells[r][c] == rules.Alive {
				count++
			}
		}
	}
	return
}

// String prints one bracketed row per line, e.g. "[0, 1, 0]"
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.height {
		sb.WriteByte('[')
		for c := range g.width {
			if c > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(g.cells[r][c].String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
