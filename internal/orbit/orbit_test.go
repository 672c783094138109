package orbit

import (
	"math"
	"testing"
)

func TestMod2Pi(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"full turn", TwoPi, 0},
		{"three pi", 3 * math.Pi, math.Pi},
		{"negative quarter", -math.Pi / 2, 3 * math.Pi / 2},
		{"seven pi", 7 * math.Pi, math.Pi},
		{"small negative", -1e-9, TwoPi - 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mod2Pi(tt.in)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Mod2Pi(%g): expected %g, got %g", tt.in, tt.want, got)
			}
			if got < 0 || got >= TwoPi {
				t.Errorf("Mod2Pi(%g) = %g outside [0, 2π)", tt.in, got)
			}
		})
	}
}

func TestElementsIsValid(t *testing.T) {
	el := Elements{
		Eccentricity: 0.1, Inclination: 0.5, MeanAnomaly: 1.0,
		RAAN: 2.0, ArgPerigee: 3.0, MeanMotion: 0.005,
	}
	if !el.IsValid() {
		t.Error("finite elements reported invalid")
	}

	bad := el
	bad.RAAN = math.NaN()
	if bad.IsValid() {
		t.Error("NaN field reported valid")
	}

	bad = el
	bad.MeanMotion = math.Inf(1)
	if bad.IsValid() {
		t.Error("Inf field reported valid")
	}
}

func TestPeriod(t *testing.T) {
	el := Elements{MeanMotion: 0.0043752691}
	if p := el.Period(); math.Abs(p-1436.1) > 0.1 {
		t.Errorf("expected ~1436.1 min, got %f", p)
	}

	el.MeanMotion = 0
	if p := el.Period(); !math.IsInf(p, 1) {
		t.Errorf("expected +Inf for zero mean motion, got %f", p)
	}
}

func TestClone(t *testing.T) {
	el := Elements{Eccentricity: 0.1, MeanMotion: 0.005}
	c := el.Clone()
	c.Eccentricity = 0.9
	if el.Eccentricity != 0.1 {
		t.Error("clone mutated the original")
	}
}
