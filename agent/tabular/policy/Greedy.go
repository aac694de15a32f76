package policy

import "sfneuman.com/gridnav/environment"

// NewGreedy creates a new greedy policy, which always exploits its
// current action values. A greedy policy is an EGreedy policy with
// ε fixed at 0.
func NewGreedy(seed uint64, env environment.Environment) (*EGreedy, error) {
	return NewEGreedy(0, 1, 0, seed, env)
}
