// Package policy implements policies over tabular action values
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"

	"sfneuman.com/gridnav/environment"
	"sfneuman.com/gridnav/timestep"
	"sfneuman.com/gridnav/utils/floatutils"
	"sfneuman.com/gridnav/utils/matutils"
)

const (
	// TableKey is the key for the action-value table in the
	// map[string]*mat.Dense returned by Table()
	TableKey string = "qvalues"
)

// unitInterval bounds the exploration schedule parameters
var unitInterval = r1.Interval{Min: 0, Max: 1}

// EGreedy implements an ε-greedy policy over a tabular action-value
// table. The table has one row per environment state and one column per
// action, and is shared with the Learner updating it.
//
// With probability ε the policy selects an action uniformly at random;
// otherwise it selects the action with the highest value in the current
// state, breaking ties in favour of the first maximal action so that
// greedy selection is deterministic for a fixed table. In evaluation
// mode ε is ignored entirely and the policy is purely greedy.
type EGreedy struct {
	qvalues    *mat.Dense
	cols       int // columns of the grid, for state indexing
	epsilon    float64
	decay      float64
	minEpsilon float64
	eval       bool
	source     rand.Source
}

// NewEGreedy constructs a new EGreedy policy for env. The epsilon
// argument is the initial probability with which a random action is
// selected; decay multiplies epsilon once per Decay() call; minEpsilon
// is the exploration floor below which epsilon never drops. All three
// must be in [0, 1].
func NewEGreedy(epsilon, decay, minEpsilon float64, seed uint64,
	env environment.Environment) (*EGreedy, error) {
	for name, value := range map[string]float64{
		"epsilon":     epsilon,
		"decay":       decay,
		"min epsilon": minEpsilon,
	} {
		if !floatutils.Within(value, unitInterval) {
			return nil, fmt.Errorf("newEGreedy: %v %v not in [0, 1]", name,
				value)
		}
	}

	if env.ActionSpec().Cardinality != environment.Discrete {
		return nil, fmt.Errorf("newEGreedy: actions must be discrete")
	}

	// Calculate the number of actions and the grid dimensions
	actions := int(env.ActionSpec().UpperBound.AtVec(0)) + 1
	rows := int(env.ObservationSpec().UpperBound.AtVec(0)) + 1
	cols := int(env.ObservationSpec().UpperBound.AtVec(1)) + 1

	// Create the action-value table: rows = states, cols = actions,
	// zero-initialized
	qvalues := mat.NewDense(rows*cols, actions, nil)

	source := rand.NewSource(seed)

	return &EGreedy{
		qvalues:    qvalues,
		cols:       cols,
		epsilon:    epsilon,
		decay:      decay,
		minEpsilon: minEpsilon,
		source:     source,
	}, nil
}

// SelectAction selects an action from the ε-greedy policy in training
// mode, or from the greedy policy in evaluation mode
func (p *EGreedy) SelectAction(t timestep.TimeStep) *mat.VecDense {
	actionValues := p.qvalues.RowView(StateIndex(t.Observation, p.cols))

	// Find the greedy action, breaking ties by the first maximum
	greedyAction := matutils.MaxVec(actionValues)

	if p.eval || p.epsilon == 0 {
		return mat.NewVecDense(1, []float64{float64(greedyAction)})
	}

	// Calculate the ε probability of choosing any action at random
	numActions := actionValues.Len()
	prob := p.epsilon / float64(numActions)
	actionProbabilities := make([]float64, numActions)
	for i := range actionProbabilities {
		actionProbabilities[i] = prob
	}

	// Adjust the probability of choosing the greedy action
	actionProbabilities[greedyAction] += 1.0 - p.epsilon

	// Sample an action from the categorical distribution over actions
	dist := distuv.NewCategorical(actionProbabilities, p.source)
	return mat.NewVecDense(1, []float64{dist.Rand()})
}

// Decay decays the exploration rate by the decay multiplier, enforcing
// the exploration floor on every call. Epsilon is therefore
// monotonically non-increasing over any sequence of Decay calls.
func (p *EGreedy) Decay() {
	p.epsilon = floatutils.Max(p.minEpsilon, p.epsilon*p.decay)
}

// Epsilon returns the current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// SetEpsilon sets the current exploration rate
func (p *EGreedy) SetEpsilon(epsilon float64) {
	p.epsilon = epsilon
}

// Eval sets the policy to evaluation mode, where it is purely greedy
func (p *EGreedy) Eval() {
	p.eval = true
}

// Train sets the policy to training mode, where it is ε-greedy
func (p *EGreedy) Train() {
	p.eval = false
}

// IsEval indicates whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool {
	return p.eval
}

// Table returns the action-value table of the EGreedy policy as a
// string description -> table map
func (p *EGreedy) Table() map[string]*mat.Dense {
	table := make(map[string]*mat.Dense)
	table[TableKey] = p.qvalues

	return table
}

// SetTable sets the action-value table pointer to point to a new table.
// SetTable can take the output of a call to Table() on another policy
// directly, so that two policies share the same action values.
func (p *EGreedy) SetTable(table map[string]*mat.Dense) error {
	newTable, ok := table[TableKey]
	if !ok {
		return fmt.Errorf("setTable: no table named %q", TableKey)
	}

	r, c := newTable.Dims()
	oldR, oldC := p.qvalues.Dims()
	if r != oldR || c != oldC {
		return fmt.Errorf("setTable: dimensions (%d, %d) != (%d, %d)",
			r, c, oldR, oldC)
	}

	p.qvalues = newTable
	return nil
}

// StateIndex returns the row of the action-value table holding the
// values for a (row, column) grid observation, given the number of
// columns in the grid
func StateIndex(obs mat.Vector, cols int) int {
	return int(obs.AtVec(0))*cols + int(obs.AtVec(1))
}
