package experiment

import (
	"sfneuman.com/gridnav/agent"
	env "sfneuman.com/gridnav/environment"
	"sfneuman.com/gridnav/experiment/tracker"
	ts "sfneuman.com/gridnav/timestep"
)

// Online is an Experiment that trains an agent online for a fixed
// number of episodes. Each episode runs until the environment signals
// a terminal timestep or the per-episode step limit cuts the episode
// off; all endings exit the episode loop identically, and only the
// timestep's EndType distinguishes them. After each completed episode
// the agent's EndEpisode() is called exactly once, which is where
// exploration decay happens.
type Online struct {
	environment env.Environment
	agent       agent.Agent
	episodes    int
	current     int
	stepLimit   env.StepLimit
	trackers    []tracker.Tracker
}

// NewOnline creates and returns a new online experiment that trains
// a on e for the given number of episodes, cutting off any episode
// that reaches stepLimit steps without terminating. The t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, episodes, stepLimit int,
	t []tracker.Tracker) *Online {
	return &Online{
		environment: e,
		agent:       a,
		episodes:    episodes,
		stepLimit:   env.NewStepLimit(stepLimit),
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with the Experiment so that
// data generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment, returning
// whether the experiment's episode budget has been exhausted
func (o *Online) RunEpisode() bool {
	step := o.environment.Reset()
	o.agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() {
		// Select an action and step in the environment
		action := o.agent.SelectAction(step)
		step, _ = o.environment.Step(action)

		// Cut the episode off if the step limit has been reached
		o.stepLimit.End(&step)

		// Cache the environment step in each Tracker
		o.track(step)

		// Observe the timestep and update the agent. The update is
		// applied on terminal transitions too.
		o.agent.Observe(action, step)
		o.agent.Step()
	}

	// Decay exploration exactly once per completed episode
	o.agent.EndEpisode()

	o.current++
	return o.current >= o.episodes
}

// Run runs the entire experiment for all episodes
func (o *Online) Run() {
	for !o.RunEpisode() {
	}
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() {
	for _, t := range o.trackers {
		t.Save()
	}
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
