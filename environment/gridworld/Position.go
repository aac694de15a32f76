package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Position is a cell in a gridworld, indexed by row and column starting
// at 0. Positions are immutable value types.
type Position struct {
	Row, Col int
}

// ManhattanDistance returns the Manhattan distance between two positions
func (p Position) ManhattanDistance(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Vector returns the observation encoding of the position, a length-2
// vector of (row, column)
func (p Position) Vector() *mat.VecDense {
	return mat.NewVecDense(2, []float64{float64(p.Row), float64(p.Col)})
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// PositionOf decodes a length-2 (row, column) observation vector into
// a Position
func PositionOf(obs mat.Vector) Position {
	if obs.Len() != 2 {
		panic(fmt.Sprintf("positionOf: observation length %d != 2",
			obs.Len()))
	}
	return Position{Row: int(obs.AtVec(0)), Col: int(obs.AtVec(1))}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
