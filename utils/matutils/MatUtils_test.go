package matutils

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFormat(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	formatted := Format(m)
	for _, want := range []string{"1", "2", "3", "4"} {
		if !strings.Contains(formatted, want) {
			t.Errorf("formatted matrix %q missing %v", formatted, want)
		}
	}
}

func TestMaxVec(t *testing.T) {
	tests := []struct {
		values []float64
		want   int
	}{
		{[]float64{0, 0, 0, 0}, 0},
		{[]float64{-1, 2, 2, 1}, 1},
		{[]float64{-3, -2, -5, -4}, 1},
		{[]float64{0, 0, 0, 0.1}, 3},
	}

	for _, test := range tests {
		v := mat.NewVecDense(len(test.values), test.values)
		if got := MaxVec(v); got != test.want {
			t.Errorf("values %v: got %d, want %d", test.values, got,
				test.want)
		}
	}
}
