package qlearning

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"

	"sfneuman.com/gridnav/agent"
	"sfneuman.com/gridnav/environment"
	"sfneuman.com/gridnav/utils/floatutils"
)

// unitInterval bounds the exploration schedule parameters
var unitInterval = r1.Interval{Min: 0, Max: 1}

// Config represents a configuration for the QLearning agent
type Config struct {
	// LearningRate is the step size α of the update rule, in (0, 1]
	LearningRate float64

	// Epsilon is the initial exploration rate of the behaviour policy,
	// in [0, 1]
	Epsilon float64

	// EpsilonDecay multiplies the exploration rate once per completed
	// episode, in [0, 1]
	EpsilonDecay float64

	// MinEpsilon is the exploration floor, in [0, 1]
	MinEpsilon float64
}

// Validate ensures that the Config is valid, returning an error
// describing the first out-of-range hyperparameter found
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return fmt.Errorf("learning rate %v not in (0, 1]", c.LearningRate)
	}

	for name, value := range map[string]float64{
		"epsilon":       c.Epsilon,
		"epsilon decay": c.EpsilonDecay,
		"min epsilon":   c.MinEpsilon,
	} {
		if !floatutils.Within(value, unitInterval) {
			return fmt.Errorf("%v %v not in [0, 1]", name, value)
		}
	}
	return nil
}

// CreateAgent creates a QLearning agent from the Config on env. The
// action-value table is always zero-initialized.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	return New(env, c, seed)
}
