package gridworld

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Reward scheme for the navigation task
const (
	// GoalReward is received when transitioning into the goal cell
	GoalReward float64 = 100.0

	// ObstacleReward is received when transitioning onto an obstacle
	ObstacleReward float64 = -10.0

	// ProgressScale scales the change in Manhattan distance to the
	// goal on non-terminal transitions
	ProgressScale float64 = 0.1

	// StepPenalty is subtracted on every non-terminal transition to
	// discourage wandering
	StepPenalty float64 = 0.2
)

// NavGoal implements the task of navigating to a single goal cell while
// avoiding obstacle cells. Transitioning into the goal earns GoalReward
// and ends the episode. Transitioning onto an obstacle earns
// ObstacleReward and also ends the episode. Every other transition is
// rewarded by the net progress made towards the goal, measured in
// Manhattan distance, minus a constant per-step penalty.
type NavGoal struct {
	goal      Position
	obstacles map[Position]struct{}
}

// NewNavGoal creates a new NavGoal task with the argument goal and
// obstacle cells. The obstacles may not contain the goal itself.
func NewNavGoal(goal Position, obstacles []Position) (*NavGoal, error) {
	set := make(map[Position]struct{}, len(obstacles))
	for _, obstacle := range obstacles {
		if obstacle == goal {
			return nil, fmt.Errorf("newNavGoal: obstacle %v overlaps "+
				"the goal", obstacle)
		}
		set[obstacle] = struct{}{}
	}
	return &NavGoal{goal, set}, nil
}

// GetReward returns the reward for transitioning from state to
// nextState. The reward is a pure function of the two observations and
// the fixed goal and obstacle cells.
func (n *NavGoal) GetReward(state, nextState mat.Vector) float64 {
	next := PositionOf(nextState)
	if next == n.goal {
		return GoalReward
	}
	if _, ok := n.obstacles[next]; ok {
		return ObstacleReward
	}

	current := PositionOf(state)
	progress := current.ManhattanDistance(n.goal) -
		next.ManhattanDistance(n.goal)
	return ProgressScale*float64(progress) - StepPenalty
}

// AtGoal returns whether state is the goal cell
func (n *NavGoal) AtGoal(state mat.Vector) bool {
	return PositionOf(state) == n.goal
}

// AtFailure returns whether state is an obstacle cell
func (n *NavGoal) AtFailure(state mat.Vector) bool {
	_, ok := n.obstacles[PositionOf(state)]
	return ok
}

// Goal returns the goal cell of the task
func (n *NavGoal) Goal() Position {
	return n.goal
}

func (n *NavGoal) String() string {
	return fmt.Sprintf("NavGoal | Goal: %v  |  Obstacles: %d", n.goal,
		len(n.obstacles))
}
