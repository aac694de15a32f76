// Package replay implements deferred evaluation of a trained policy.
//
// A Rollout follows the greedy policy of a trained agent through an
// environment one pull at a time, producing the visited positions for
// an external display sink to consume. No work is performed until a
// frame is pulled, and the sequence may be abandoned partway without
// cleanup.
package replay

import (
	"fmt"

	"sfneuman.com/gridnav/agent"
	env "sfneuman.com/gridnav/environment"
	"sfneuman.com/gridnav/environment/gridworld"
	"sfneuman.com/gridnav/timestep"
)

// Frame is a single step of a policy rollout: the position reached and
// the number of steps taken to reach it
type Frame struct {
	Position gridworld.Position
	Step     int
}

func (f Frame) String() string {
	return fmt.Sprintf("step %d: %v", f.Step, f.Position)
}

// Rollout is a lazy, finite, non-restartable sequence of Frames
// produced by following a policy greedily until the episode ends or a
// step limit is reached. For a fixed action-value table the sequence
// is deterministic, since greedy action selection breaks ties by the
// first maximal action.
type Rollout struct {
	environment env.Environment
	policy      agent.Policy
	stepLimit   env.StepLimit
	step        timestep.TimeStep
	done        bool
}

// New creates a new Rollout of policy p on e, cut off after stepLimit
// steps if no terminal state is reached first. The step limit should
// usually be larger than the training step limit so that a policy that
// fails to terminate is visible rather than silently truncated. The
// policy is put in evaluation mode and the environment is reset, so
// any episode in progress on e is discarded.
func New(e env.Environment, p agent.Policy, stepLimit int) (*Rollout, error) {
	if stepLimit <= 0 {
		return nil, fmt.Errorf("replay: step limit %d < 1", stepLimit)
	}

	p.Eval()
	r := &Rollout{
		environment: e,
		policy:      p,
		stepLimit:   env.NewStepLimit(stepLimit),
	}
	r.step = e.Reset()
	return r, nil
}

// Next pulls the next Frame of the rollout, performing exactly one
// greedy action selection and one environment step. The second return
// value is false once the sequence is exhausted: the frame on which
// the episode ended is yielded, and every pull after it reports the
// end of the sequence.
func (r *Rollout) Next() (Frame, bool) {
	if r.done {
		return Frame{}, false
	}

	action := r.policy.SelectAction(r.step)
	step, _ := r.environment.Step(action)
	r.stepLimit.End(&step)
	r.step = step

	if step.Last() {
		r.done = true
	}

	return Frame{
		Position: gridworld.PositionOf(step.Observation),
		Step:     step.Number,
	}, true
}

// EndType returns why the rollout ended, or timestep.Nil if it has not
// ended yet
func (r *Rollout) EndType() timestep.EndType {
	return r.step.EndType
}
