package gridworld

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"

	"sfneuman.com/gridnav/timestep"
)

func action(a int) mat.Vector {
	return mat.NewVecDense(1, []float64{float64(a)})
}

// TestStepStaysWithinBounds checks the clamping invariant: stepping
// from any position via any action always lands within the grid.
func TestStepStaysWithinBounds(t *testing.T) {
	size := 5
	g, _, err := New(size, nil, 0.99)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10_000; i++ {
		step, last := g.Step(action(rng.Intn(NumActions)))

		pos := PositionOf(step.Observation)
		if pos.Row < 0 || pos.Row >= size || pos.Col < 0 || pos.Col >= size {
			t.Fatalf("position %v out of bounds for size %d", pos, size)
		}
		if pos != g.Position() {
			t.Fatalf("observation %v does not match current position %v",
				pos, g.Position())
		}

		if last {
			g.Reset()
		}
	}
}

// TestStepClampsAtWalls checks that moving into a wall is a no-op on
// that axis rather than an error
func TestStepClampsAtWalls(t *testing.T) {
	g, _, err := New(3, nil, 1.0)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}

	// From the start (0, 0), Up and Left are both clamped
	for _, a := range []int{Up, Left} {
		step, last := g.Step(action(a))
		if last {
			t.Fatalf("clamped move ended the episode")
		}
		if pos := PositionOf(step.Observation); pos != (Position{0, 0}) {
			t.Errorf("action %d: got %v, want (0, 0)", a, pos)
		}

		// No progress was made, so only the step penalty applies
		if step.Reward != -StepPenalty {
			t.Errorf("action %d: got reward %v, want %v", a, step.Reward,
				-StepPenalty)
		}
	}
}

func TestStepGoalReward(t *testing.T) {
	g, firstStep, err := New(2, nil, 0.99)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}
	if !firstStep.First() {
		t.Errorf("first timestep is not First")
	}

	// (0, 0) -> (1, 0): one cell closer to the goal
	step, last := g.Step(action(Down))
	if last {
		t.Fatalf("episode ended before reaching the goal")
	}
	want := ProgressScale*1 - StepPenalty
	if math.Abs(step.Reward-want) > 1e-12 {
		t.Errorf("shaped reward: got %v, want %v", step.Reward, want)
	}

	// (1, 0) -> (1, 1): the goal
	step, last = g.Step(action(Right))
	if !last || !step.Last() {
		t.Errorf("goal transition did not end the episode")
	}
	if step.Reward != GoalReward {
		t.Errorf("goal reward: got %v, want %v", step.Reward, GoalReward)
	}
	if step.EndType != timestep.Goal {
		t.Errorf("goal end type: got %v, want %v", step.EndType,
			timestep.Goal)
	}
}

func TestStepObstacleReward(t *testing.T) {
	g, _, err := New(3, []Position{{0, 1}}, 0.99)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}

	step, last := g.Step(action(Right))
	if !last {
		t.Errorf("obstacle transition did not end the episode")
	}
	if step.Reward != ObstacleReward {
		t.Errorf("obstacle reward: got %v, want %v", step.Reward,
			ObstacleReward)
	}
	if step.EndType != timestep.Failure {
		t.Errorf("obstacle end type: got %v, want %v", step.EndType,
			timestep.Failure)
	}

	// The position is updated unconditionally, even on terminal
	// transitions
	if g.Position() != (Position{0, 1}) {
		t.Errorf("terminal transition did not move the agent: at %v",
			g.Position())
	}
}

// TestResetReturnsToStart checks that Reset places the agent back at
// the start regardless of where the previous episode ended
func TestResetReturnsToStart(t *testing.T) {
	g, _, err := New(4, []Position{{2, 2}}, 0.99)
	if err != nil {
		t.Fatalf("could not create gridworld: %v", err)
	}

	g.Step(action(Down))
	g.Step(action(Down))
	g.Step(action(Right))
	g.Step(action(Right)) // onto the obstacle

	step := g.Reset()
	if pos := PositionOf(step.Observation); pos != (Position{0, 0}) {
		t.Errorf("reset returned %v, want (0, 0)", pos)
	}
	if g.Position() != (Position{0, 0}) {
		t.Errorf("reset left the agent at %v", g.Position())
	}
	if step.Number != 0 || !step.First() {
		t.Errorf("reset timestep is not a numbered first step: %v", step)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		size      int
		obstacles []Position
		discount  float64
	}{
		{"size too small", 1, nil, 0.99},
		{"zero discount", 5, nil, 0},
		{"discount above one", 5, nil, 1.5},
		{"obstacle out of bounds", 5, []Position{{5, 0}}, 0.99},
		{"obstacle on start", 5, []Position{{0, 0}}, 0.99},
		{"obstacle on goal", 5, []Position{{4, 4}}, 0.99},
	}

	for _, test := range tests {
		if _, _, err := New(test.size, test.obstacles,
			test.discount); err == nil {
			t.Errorf("%v: expected a construction error", test.name)
		}
	}

	if _, _, err := New(2, nil, 1.0); err != nil {
		t.Errorf("valid configuration refused: %v", err)
	}
}

func TestDefaultLayout(t *testing.T) {
	obstacles := DefaultObstacles()
	if len(obstacles) == 0 {
		t.Fatalf("default layout has no obstacles")
	}

	if _, _, err := New(DefaultSize, obstacles, 0.99); err != nil {
		t.Fatalf("default layout refused: %v", err)
	}

	seen := make(map[Position]struct{}, len(obstacles))
	for _, obstacle := range obstacles {
		if _, ok := seen[obstacle]; ok {
			t.Errorf("duplicate obstacle %v", obstacle)
		}
		seen[obstacle] = struct{}{}
	}
}

func TestManhattanDistance(t *testing.T) {
	p := Position{2, 3}
	if d := p.ManhattanDistance(Position{0, 0}); d != 5 {
		t.Errorf("got %d, want 5", d)
	}
	if d := p.ManhattanDistance(p); d != 0 {
		t.Errorf("got %d, want 0", d)
	}
	if d := p.ManhattanDistance(Position{4, 1}); d != 4 {
		t.Errorf("got %d, want 4", d)
	}
}
