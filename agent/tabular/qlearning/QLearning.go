// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning learns the action values of the greedy target policy
// while following an ε-greedy behaviour policy. Both policies and the
// learner share a single action-value table, owned exclusively by the
// agent holding them.
package qlearning

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/agent/tabular/policy"
	"sfneuman.com/gridnav/environment"
	"sfneuman.com/gridnav/timestep"
)

// QLearning implements the tabular Q-Learning algorithm
type QLearning struct {
	learner   *QLearner
	behaviour *policy.EGreedy // ε-greedy with decaying ε
	target    *policy.EGreedy // greedy
	seed      uint64
}

// New creates a new QLearning agent on env from a Config. The
// environment must have discrete, 1-dimensional actions and a
// (row, column) grid observation. Construction fails if any
// hyperparameter is out of range.
func New(env environment.Environment, config Config,
	seed uint64) (*QLearning, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	behaviour, err := policy.NewEGreedy(config.Epsilon, config.EpsilonDecay,
		config.MinEpsilon, seed, env)
	if err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	target, err := policy.NewGreedy(seed, env)
	if err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	// All components share a single action-value table
	if err := target.SetTable(behaviour.Table()); err != nil {
		return nil, fmt.Errorf("qlearning: %v", err)
	}

	cols := int(env.ObservationSpec().UpperBound.AtVec(1)) + 1
	learner := NewQLearner(behaviour.Table()[policy.TableKey], cols,
		config.LearningRate)

	return &QLearning{learner, behaviour, target, seed}, nil
}

// SelectAction selects an action using the behaviour policy in training
// mode and the greedy target policy in evaluation mode
func (q *QLearning) SelectAction(t timestep.TimeStep) *mat.VecDense {
	if q.behaviour.IsEval() {
		return q.target.SelectAction(t)
	}
	return q.behaviour.SelectAction(t)
}

// Step performs a single update to the action-value table
func (q *QLearning) Step() {
	q.learner.Step()
}

// Observe records that an action led to some timestep
func (q *QLearning) Observe(action mat.Vector, nextObs timestep.TimeStep) {
	q.learner.Observe(action, nextObs)
}

// ObserveFirst records the first timestep in an episode
func (q *QLearning) ObserveFirst(t timestep.TimeStep) {
	q.learner.ObserveFirst(t)
}

// EndEpisode decays the exploration rate of the behaviour policy. It
// is called exactly once per completed episode.
func (q *QLearning) EndEpisode() {
	q.behaviour.Decay()
	q.learner.EndEpisode()
}

// TdError returns the TD error on a transition with respect to the
// current action-value table
func (q *QLearning) TdError(t timestep.Transition) float64 {
	return q.learner.TdError(t)
}

// Epsilon returns the current exploration rate of the behaviour policy
func (q *QLearning) Epsilon() float64 {
	return q.behaviour.Epsilon()
}

// Eval sets the agent to evaluation mode, where actions are selected
// greedily
func (q *QLearning) Eval() {
	q.behaviour.Eval()
}

// Train sets the agent to training mode, where actions are selected
// by the ε-greedy behaviour policy
func (q *QLearning) Train() {
	q.behaviour.Train()
}

// IsEval indicates whether the agent is in evaluation mode
func (q *QLearning) IsEval() bool {
	return q.behaviour.IsEval()
}

// Table returns the action-value table of the agent as a string
// description -> table map
func (q *QLearning) Table() map[string]*mat.Dense {
	return q.learner.Table()
}

// SetTable sets the shared action-value table of the learner and both
// policies to point to a new table
func (q *QLearning) SetTable(table map[string]*mat.Dense) error {
	if err := q.behaviour.SetTable(table); err != nil {
		return err
	}
	if err := q.target.SetTable(table); err != nil {
		return err
	}
	return q.learner.SetTable(table)
}
