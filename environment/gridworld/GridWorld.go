// Package gridworld implements a 2D grid navigation environment
package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/environment"
	"sfneuman.com/gridnav/timestep"
)

// Actions available in a GridWorld
const (
	Up int = iota
	Down
	Left
	Right
	NumActions
)

// GridWorld implements a square grid navigation environment. Episodes
// start at the fixed cell (0, 0) and the goal is the fixed cell
// (size-1, size-1). The only mutable state is the agent's current
// position, which always stays within [0, size) on both axes: moves
// into a wall are clamped on that axis rather than rejected.
type GridWorld struct {
	environment.Task
	environment.Starter
	size        int
	obstacles   []Position
	position    Position
	discount    float64
	currentStep timestep.TimeStep
}

// New creates a new GridWorld of dimension size with the argument
// obstacle cells and discount factor, returning the environment and its
// first timestep. The size must be at least 2, the discount must be in
// (0, 1], and no obstacle may lie out of bounds or on the start or goal
// cell.
func New(size int, obstacles []Position,
	discount float64) (*GridWorld, timestep.TimeStep, error) {
	if size < 2 {
		return nil, timestep.TimeStep{}, fmt.Errorf("gridworld: size %d < 2",
			size)
	}
	if discount <= 0 || discount > 1 {
		return nil, timestep.TimeStep{}, fmt.Errorf("gridworld: discount %v "+
			"not in (0, 1]", discount)
	}

	start := Position{0, 0}
	goal := Position{size - 1, size - 1}
	for _, obstacle := range obstacles {
		if obstacle.Row < 0 || obstacle.Row >= size || obstacle.Col < 0 ||
			obstacle.Col >= size {
			return nil, timestep.TimeStep{}, fmt.Errorf("gridworld: "+
				"obstacle %v out of bounds for size %d", obstacle, size)
		}
		if obstacle == start {
			return nil, timestep.TimeStep{}, fmt.Errorf("gridworld: "+
				"obstacle %v overlaps the start", obstacle)
		}
	}

	task, err := NewNavGoal(goal, obstacles)
	if err != nil {
		return nil, timestep.TimeStep{}, err
	}

	starter, err := NewSingleStart(start, size)
	if err != nil {
		return nil, timestep.TimeStep{}, err
	}

	g := &GridWorld{
		Task:      task,
		Starter:   starter,
		size:      size,
		obstacles: obstacles,
		position:  start,
		discount:  discount,
	}
	return g, g.Reset(), nil
}

// Size returns the grid dimension
func (g *GridWorld) Size() int {
	return g.size
}

// Position returns the agent's current cell
func (g *GridWorld) Position() Position {
	return g.position
}

// Obstacles returns the obstacle cells of the environment. The returned
// slice is shared and should not be modified.
func (g *GridWorld) Obstacles() []Position {
	return g.obstacles
}

// Reset resets the environment between episodes, placing the agent back
// at the start cell regardless of where the previous episode ended
func (g *GridWorld) Reset() timestep.TimeStep {
	startVec := g.Start()
	g.position = PositionOf(startVec)

	startStep := timestep.New(timestep.First, 0, g.discount, startVec, 0)
	g.currentStep = startStep
	return startStep
}

// Step takes a single environmental step given an action, returning the
// next timestep and whether that timestep is the last in the episode.
// The agent's position is updated unconditionally, including on
// terminal transitions.
func (g *GridWorld) Step(action mat.Vector) (timestep.TimeStep, bool) {
	if l := action.Len(); l != 1 {
		panic(fmt.Sprintf("step: action dimension %d != 1", l))
	}

	next := g.move(int(action.AtVec(0)))
	nextVec := next.Vector()

	reward := g.GetReward(g.position.Vector(), nextVec)
	number := g.currentStep.Number + 1

	step := timestep.New(timestep.Mid, reward, g.discount, nextVec, number)
	if g.AtGoal(nextVec) {
		step.SetEnd(timestep.Goal)
	} else if g.AtFailure(nextVec) {
		step.SetEnd(timestep.Failure)
	}

	g.position = next
	g.currentStep = step
	return step, step.Last()
}

// move computes the cell reached by taking action from the current
// cell, clamping at the grid boundaries
func (g *GridWorld) move(action int) Position {
	row, col := g.position.Row, g.position.Col

	switch action {
	case Up:
		if row > 0 {
			row--
		}
	case Down:
		if row < g.size-1 {
			row++
		}
	case Left:
		if col > 0 {
			col--
		}
	case Right:
		if col < g.size-1 {
			col++
		}
	default:
		panic(fmt.Sprintf("move: no such action %d", action))
	}
	return Position{row, col}
}

// ObservationSpec returns the observation specification of the
// environment: a (row, column) pair, each in [0, size-1]
func (g *GridWorld) ObservationSpec() environment.Spec {
	shape := mat.NewVecDense(2, nil)
	lowerBound := mat.NewVecDense(2, nil)
	upperBound := mat.NewVecDense(2, []float64{
		float64(g.size - 1),
		float64(g.size - 1),
	})

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound, environment.Discrete)
}

// ActionSpec returns the action specification of the environment: a
// single discrete value in [Up, Right] == [0, 3]
func (g *GridWorld) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{float64(Up)})
	upperBound := mat.NewVecDense(1, []float64{float64(Right)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound, environment.Discrete)
}

// RewardSpec returns the reward specification of the environment
func (g *GridWorld) RewardSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{ObstacleReward})
	upperBound := mat.NewVecDense(1, []float64{GoalReward})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound, environment.Continuous)
}

// DiscountSpec returns the discount specification of the environment
func (g *GridWorld) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	bound := mat.NewVecDense(1, []float64{g.discount})

	return environment.NewSpec(shape, environment.Discount, bound, bound,
		environment.Continuous)
}

func (g *GridWorld) String() string {
	return fmt.Sprintf("GridWorld | At: %v  |  %v  |  Bounds: (%d, %d)",
		g.position, g.Task, g.size, g.size)
}
