package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/environment"
)

// SingleStart is a start-state distribution that always starts episodes
// at the same fixed cell
type SingleStart struct {
	state Position
}

// NewSingleStart creates a Starter that starts every episode at cell p
// in a gridworld with size rows and columns
func NewSingleStart(p Position, size int) (environment.Starter, error) {
	if p.Row < 0 || p.Row >= size || p.Col < 0 || p.Col >= size {
		return nil, fmt.Errorf("newSingleStart: start %v out of bounds "+
			"for size %d", p, size)
	}
	return &SingleStart{p}, nil
}

// Start returns the starting state observation
func (s *SingleStart) Start() mat.Vector {
	return s.state.Vector()
}
