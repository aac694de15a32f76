package policy

import (
	"testing"

	"sfneuman.com/gridnav/environment/gridworld"
	"sfneuman.com/gridnav/timestep"
)

func testEnv(t *testing.T, size int) *gridworld.GridWorld {
	t.Helper()
	g, _, err := gridworld.New(size, nil, 0.99)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}
	return g
}

func stepAt(p gridworld.Position) timestep.TimeStep {
	return timestep.New(timestep.Mid, 0, 0.99, p.Vector(), 1)
}

// TestSelectActionEvalDeterministic checks that with exploration
// disabled, action selection is a pure function of the table
func TestSelectActionEvalDeterministic(t *testing.T) {
	env := testEnv(t, 3)
	p, err := NewEGreedy(0.75, 0.9, 0.01, 14, env)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	state := gridworld.Position{Row: 1, Col: 1}
	table := p.Table()[TableKey]
	table.Set(StateIndex(state.Vector(), 3), 2, 1.5)

	p.Eval()
	for i := 0; i < 100; i++ {
		if a := p.SelectAction(stepAt(state)); int(a.AtVec(0)) != 2 {
			t.Fatalf("eval-mode selection not greedy: got %v, want 2",
				a.AtVec(0))
		}
	}

	// A greedy policy behaves the same way without Eval()
	greedy, err := NewGreedy(14, env)
	if err != nil {
		t.Fatalf("could not create greedy policy: %v", err)
	}
	if err := greedy.SetTable(p.Table()); err != nil {
		t.Fatalf("could not share table: %v", err)
	}
	for i := 0; i < 100; i++ {
		if a := greedy.SelectAction(stepAt(state)); int(a.AtVec(0)) != 2 {
			t.Fatalf("greedy selection changed: got %v, want 2", a.AtVec(0))
		}
	}
}

// TestSelectActionTieBreak checks that ties are broken by the first
// action achieving the maximum
func TestSelectActionTieBreak(t *testing.T) {
	env := testEnv(t, 3)
	p, err := NewGreedy(14, env)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	state := gridworld.Position{Row: 0, Col: 1}
	index := StateIndex(state.Vector(), 3)
	table := p.Table()[TableKey]

	// All zero: the first action wins
	if a := p.SelectAction(stepAt(state)); int(a.AtVec(0)) != 0 {
		t.Errorf("all-zero tie: got %v, want 0", a.AtVec(0))
	}

	// Two equal maxima: the earlier one wins
	table.Set(index, 1, 2.0)
	table.Set(index, 3, 2.0)
	if a := p.SelectAction(stepAt(state)); int(a.AtVec(0)) != 1 {
		t.Errorf("equal maxima: got %v, want 1", a.AtVec(0))
	}
}

// TestDecayEnforcesFloor checks that epsilon is non-increasing under
// Decay and never drops below the exploration floor
func TestDecayEnforcesFloor(t *testing.T) {
	env := testEnv(t, 3)
	p, err := NewEGreedy(1.0, 0.5, 0.2, 14, env)
	if err != nil {
		t.Fatalf("could not create policy: %v", err)
	}

	want := []float64{0.5, 0.25, 0.2, 0.2, 0.2}
	last := p.Epsilon()
	for i, expected := range want {
		p.Decay()
		if p.Epsilon() != expected {
			t.Errorf("decay %d: got %v, want %v", i+1, p.Epsilon(), expected)
		}
		if p.Epsilon() > last {
			t.Errorf("decay %d: epsilon increased from %v to %v", i+1, last,
				p.Epsilon())
		}
		last = p.Epsilon()
	}
}

func TestNewEGreedyValidation(t *testing.T) {
	env := testEnv(t, 3)

	invalid := [][3]float64{
		{1.5, 0.9, 0.01}, // epsilon
		{-0.1, 0.9, 0.01},
		{0.5, 1.5, 0.01}, // decay
		{0.5, 0.9, -1},   // floor
	}
	for _, params := range invalid {
		if _, err := NewEGreedy(params[0], params[1], params[2], 14,
			env); err == nil {
			t.Errorf("parameters %v: expected a construction error", params)
		}
	}
}

func TestStateIndex(t *testing.T) {
	cols := 4
	if i := StateIndex(gridworld.Position{Row: 0, Col: 0}.Vector(), cols); i != 0 {
		t.Errorf("got %d, want 0", i)
	}
	if i := StateIndex(gridworld.Position{Row: 2, Col: 3}.Vector(), cols); i != 11 {
		t.Errorf("got %d, want 11", i)
	}
}
