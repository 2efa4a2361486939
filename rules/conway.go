package rules

import "github.com/pkg/errors"

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String renders the cell the way seeds are written: "0" or "1"
func (c Cell) String() string {
	if c == Alive {
		return "1"
	}
	return "0"
}

// CellFromInt converts a 0/1 literal into a Cell
func CellFromInt(v int) (Cell, error) {
	switch v {
	case 0:
		return Dead, nil
	case 1:
		return Alive, nil
	default:
		return Dead, errors.Errorf("[CellFromInt] cell value must be 0 or 1, got %d", v)
	}
}

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

An alive cell survives with 2 or 3 live neighbors and dies otherwise (isolation
at <=1, overcrowding at >=4). A dead cell is born with exactly 3.
*/
func ApplyConwayRules(neighbors int, current Cell) Cell {
	if current == Alive {
		if neighbors == 2 || neighbors == 3 {
			return Alive
		}
		return Dead
	}
	if neighbors == 3 {
		return Alive
	}
	return Dead
}
