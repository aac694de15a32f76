// Package agent defines an agent interface
package agent

import (
	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// Policy. The Learner and Policy of an Agent share the same underlying
// action-value table, so every update the Learner makes is immediately
// reflected in the actions the Policy chooses.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how the
// action-value table is updated
type Learner interface {
	// Step performs a single update to the learner using the most
	// recently observed transition
	Step()

	// Observe records that an action led to some timestep
	Observe(action mat.Vector, nextObs timestep.TimeStep)

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep)

	// EndEpisode performs cleanup at the end of an episode, such as
	// decaying exploration. It is called exactly once per completed
	// episode, never mid-episode.
	EndEpisode()

	// TdError returns the TD error on a transition without updating
	// the action-value table
	TdError(t timestep.Transition) float64
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. A Policy is either in
// training mode, where it may explore, or in evaluation mode, where it
// always exploits its current action values.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode

	// Table returns the action-value table backing the policy as a
	// string description -> matrix map
	Table() map[string]*mat.Dense
	SetTable(map[string]*mat.Dense) error
}
