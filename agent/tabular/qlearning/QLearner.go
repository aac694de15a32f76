package qlearning

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/agent/tabular/policy"
	"sfneuman.com/gridnav/timestep"
)

// QLearner implements the update functionality for the tabular
// Q-Learning algorithm
type QLearner struct {
	qvalues      *mat.Dense
	cols         int // columns of the grid, for state indexing
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	learningRate float64
}

// NewQLearner creates a new QLearner that updates the argument
// action-value table in place
func NewQLearner(qvalues *mat.Dense, cols int,
	learningRate float64) *QLearner {
	return &QLearner{
		qvalues:      qvalues,
		cols:         cols,
		learningRate: learningRate,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) {
	if !t.First() {
		fmt.Fprintf(os.Stderr, "Warning: ObserveFirst() should only be "+
			"called on the first timestep (current timestep = %d)\n", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearner) Observe(action mat.Vector, nextStep timestep.TimeStep) {
	if action.Len() != 1 {
		fmt.Fprintf(os.Stderr, "Warning: value-based methods should not "+
			"have multi-dimensional actions (action dim = %d)\n", action.Len())
	}
	q.step = q.nextStep
	q.action = int(action.AtVec(0))
	q.nextStep = nextStep
}

// Step updates the action-value table using the most recently observed
// transition:
//
//	Q[s, a] ← Q[s, a] + α·(r + γ·max_a' Q[s', a'] − Q[s, a])
//
// The target bootstraps from the next state even on terminal
// transitions; the next episode resets before that state is ever acted
// from.
func (q *QLearner) Step() {
	// Find the maximum action value in the next state
	nextIndex := policy.StateIndex(q.nextStep.Observation, q.cols)
	maxNextValue := mat.Max(q.qvalues.RowView(nextIndex))

	// Create the update target
	discount := q.nextStep.Discount
	target := q.nextStep.Reward + discount*maxNextValue

	// Move the current estimate of the taken action towards the target
	index := policy.StateIndex(q.step.Observation, q.cols)
	currentEstimate := q.qvalues.At(index, q.action)

	q.qvalues.Set(index, q.action,
		currentEstimate+q.learningRate*(target-currentEstimate))
}

// TdError returns the TD error on a transition with respect to the
// current action-value table, without updating the table
func (q *QLearner) TdError(t timestep.Transition) float64 {
	nextIndex := policy.StateIndex(t.NextState, q.cols)
	target := t.Reward + t.Discount*mat.Max(q.qvalues.RowView(nextIndex))

	index := policy.StateIndex(t.State, q.cols)
	return target - q.qvalues.At(index, int(t.Action.AtVec(0)))
}

// EndEpisode performs cleanup at the end of an episode. The QLearner
// itself keeps no episodic state beyond the last transition.
func (q *QLearner) EndEpisode() {}

// Table returns the action-value table of the learner as a string
// description -> table map
func (q *QLearner) Table() map[string]*mat.Dense {
	table := make(map[string]*mat.Dense)
	table[policy.TableKey] = q.qvalues

	return table
}

// SetTable sets the action-value table pointer to point to a new table
func (q *QLearner) SetTable(table map[string]*mat.Dense) error {
	newTable, ok := table[policy.TableKey]
	if !ok {
		return fmt.Errorf("setTable: no table named %q", policy.TableKey)
	}

	q.qvalues = newTable
	return nil
}
