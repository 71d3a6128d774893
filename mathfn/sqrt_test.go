package mathfn

import (
	stdmath "math"
	"testing"
)

func TestSqrt(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"sqrt(0) = 0", 0.0, 0.0},
		{"sqrt(1) = 1", 1.0, 1.0},
		{"sqrt(4) = 2", 4.0, 2.0},
		{"sqrt(2)", 2.0, stdmath.Sqrt2},
		{"sqrt(1e300)", 1e300, 1e150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sqrt(tt.input)
			if stdmath.Abs(got-tt.want) > 1e-12*tt.want {
				t.Errorf("Sqrt(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSqrtSpecialCases(t *testing.T) {
	if got := Sqrt(-1.0); !stdmath.IsNaN(got) {
		t.Errorf("Sqrt(-1) = %v, want NaN", got)
	}
	if got := Sqrt(stdmath.NaN()); !stdmath.IsNaN(got) {
		t.Errorf("Sqrt(NaN) = %v, want NaN", got)
	}
	if got := Sqrt(stdmath.Inf(1)); !stdmath.IsInf(got, 1) {
		t.Errorf("Sqrt(+Inf) = %v, want +Inf", got)
	}
}

func TestSqrtRoundTrip(t *testing.T) {
	// sqrt(x*x) ≈ |x| within floating-point tolerance.
	for _, x := range []float64{-13.5, -1.0, -1e-3, 0.25, 3.0, 1234.5678, 1e10} {
		want := stdmath.Abs(x)
		got := Sqrt(x * x)
		if stdmath.Abs(got-want) > 1e-9*want {
			t.Errorf("Sqrt(%v * %v) = %v, want %v", x, x, got, want)
		}
	}
}

func TestSqrtFloat32(t *testing.T) {
	got := Sqrt(float32(9.0))
	if got != 3.0 {
		t.Errorf("Sqrt(float32 9) = %v, want 3", got)
	}
}
