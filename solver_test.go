package geom

import (
	"math"
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		expect  []float64
	}{
		{"two roots", 1, -3, 2, []float64{1, 2}},
		{"double root", 1, -2, 1, []float64{1}},
		{"no real roots", 1, 0, 1, nil},
		{"linear", 0, 2, 4, []float64{-2}},
		{"all zero", 0, 0, 0, []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadratic(tt.a, tt.b, tt.c)
			if len(got) != len(tt.expect) {
				t.Fatalf("SolveQuadratic(%v, %v, %v) = %v, want %v",
					tt.a, tt.b, tt.c, got, tt.expect)
			}
			for i := range got {
				if math.Abs(got[i]-tt.expect[i]) > 1e-9 {
					t.Errorf("root %d = %v, want %v", i, got[i], tt.expect[i])
				}
			}
		})
	}
}

func TestSolveQuadratic_Sorted(t *testing.T) {
	roots := SolveQuadratic(1, -1, -6) // roots -2 and 3
	if len(roots) != 2 || roots[0] > roots[1] {
		t.Errorf("roots not sorted ascending: %v", roots)
	}
}

func TestSolveQuadraticInUnitInterval(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c float64
		expect  []float64
	}{
		{"inside", 1, -1, 0.21, []float64{0.3, 0.7}},
		{"outside filtered", 1, -3, 2, []float64{1}}, // roots 1 and 2
		{"none in range", 1, -7, 12, nil},            // roots 3 and 4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SolveQuadraticInUnitInterval(tt.a, tt.b, tt.c)
			if len(got) != len(tt.expect) {
				t.Fatalf("got %v, want %v", got, tt.expect)
			}
			for i := range got {
				if math.Abs(got[i]-tt.expect[i]) > 1e-9 {
					t.Errorf("root %d = %v, want %v", i, got[i], tt.expect[i])
				}
			}
		})
	}
}
