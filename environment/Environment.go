// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() mat.Vector
}

// Task implements the reward scheme for transitions in some environment.
// Rewards and terminal predicates are pure functions of the observations
// given to them, so a Task carries no mutable state.
type Task interface {
	// GetReward returns the reward for transitioning from state to
	// nextState
	GetReward(state, nextState mat.Vector) float64

	// AtGoal returns whether state is a goal state
	AtGoal(state mat.Vector) bool

	// AtFailure returns whether state is a failure state that ends
	// the episode without reaching the goal
	AtFailure(state mat.Vector) bool
}

// Ender determines whether an episode should be cut off independently
// of the Task, for example at a step limit
type Ender interface {
	// End returns whether the current episode should be ended. If so,
	// End modifies the timestep so that it is the last in its episode.
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment, which includes a Task to
// complete
type Environment interface {
	Task
	Starter
	Reset() timestep.TimeStep // Resets between episodes
	Step(action mat.Vector) (timestep.TimeStep, bool)
	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
