package environment

import "sfneuman.com/gridnav/timestep"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended, End will modify the timestep so that its StepType
// field is timestep.Last and its EndType field is timestep.Cutoff.
// Timesteps that are already the last in their episode are left
// untouched, so that a goal or failure ending is never relabelled as
// a cutoff.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Last() {
		return false
	}
	if t.Number >= s.episodeSteps {
		t.SetEnd(timestep.Cutoff)
		return true
	}
	return false
}
