// Package experiment implements functionality for running an experiment
package experiment

import (
	"sfneuman.com/gridnav/experiment/tracker"
	ts "sfneuman.com/gridnav/timestep"
)

// Experiment outlines structs that can run experiments. The Run()
// method runs episodes until the experiment's ending condition is
// reached. The RunEpisode() method runs a single episode.
//
// In order to save data, Experiments use Trackers. Trackers determine
// which data generated during the experiment is saved. Experiments
// send each TimeStep to their Trackers using the Tracker's Track()
// method; the Tracker then determines which data from the TimeStep it
// caches. The Save() function takes all cached data and saves it to
// disk, usually after the experiment has been run. New Trackers can be
// registered with an Experiment through the constructor or through an
// Experiment's Register() function.
type Experiment interface {
	Run()
	RunEpisode() bool // Returns whether or not the experiment finished

	// Save all tracked data to disk
	Save()

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if data should be tracked only after a
	// specified event.
	Register(t tracker.Tracker)

	// Tracks the current timestep by sending it to Trackers
	track(ts.TimeStep)
}
