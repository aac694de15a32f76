package timestep

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewHasNilEndType(t *testing.T) {
	step := New(Mid, -0.2, 0.99, mat.NewVecDense(2, nil), 3)

	if step.EndType != Nil {
		t.Errorf("got %v, want %v", step.EndType, Nil)
	}
	if !step.Mid() || step.First() || step.Last() {
		t.Errorf("step type predicates inconsistent for %v", step.StepType)
	}
}

func TestSetEndMarksLast(t *testing.T) {
	step := New(Mid, 100, 0.99, mat.NewVecDense(2, nil), 8)
	step.SetEnd(Goal)

	if !step.Last() {
		t.Errorf("SetEnd did not mark the step as last")
	}
	if step.EndType != Goal {
		t.Errorf("got %v, want %v", step.EndType, Goal)
	}
}
