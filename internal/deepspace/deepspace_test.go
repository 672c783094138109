package deepspace_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/deeporbit/internal/deepspace"
	"github.com/san-kum/deeporbit/internal/nearearth"
	"github.com/san-kum/deeporbit/internal/orbit"
)

var testEpoch = time.Date(2006, 6, 15, 12, 0, 0, 0, time.UTC)

func geoElements() orbit.Elements {
	return orbit.Elements{
		Eccentricity: 0.001,
		Inclination:  0.01,
		MeanAnomaly:  2.0944,
		RAAN:         1.3963,
		ArgPerigee:   0.7854,
		MeanMotion:   0.0043752691,
	}
}

func initContext(t *testing.T, el orbit.Elements) (*deepspace.Context, orbit.Derived) {
	t.Helper()
	d := nearearth.Recover(el)
	ctx, err := deepspace.Initialize(&el, d, testEpoch)
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	return ctx, d
}

// baseElements reproduces the zonal-harmonic advance the driver applies
// before the deep-space corrections.
func baseElements(el orbit.Elements, d orbit.Derived, t float64) orbit.Elements {
	return orbit.Elements{
		MeanAnomaly:  el.MeanAnomaly + d.MDot*t,
		ArgPerigee:   el.ArgPerigee + d.ArgPDot*t,
		RAAN:         el.RAAN + d.NodeDot*t,
		Eccentricity: el.Eccentricity,
		Inclination:  el.Inclination,
		MeanMotion:   d.MeanMotion,
	}
}

func propagate(ctx *deepspace.Context, el orbit.Elements, d orbit.Derived, t float64) orbit.Elements {
	out := baseElements(el, d, t)
	ctx.Secular(&out, t)
	ctx.Periodic(&out, t)
	return out
}

func maxElementDiff(a, b orbit.Elements) float64 {
	diffs := []float64{
		a.Eccentricity - b.Eccentricity,
		a.Inclination - b.Inclination,
		a.MeanAnomaly - b.MeanAnomaly,
		a.RAAN - b.RAAN,
		a.ArgPerigee - b.ArgPerigee,
		a.MeanMotion - b.MeanMotion,
	}
	max := 0.0
	for _, d := range diffs {
		if v := math.Abs(d); v > max {
			max = v
		}
	}
	return max
}

func TestInitializeRejectsUnresolvableEpoch(t *testing.T) {
	el := geoElements()
	d := nearearth.Recover(el)

	for _, year := range []int{1950, 2057} {
		at := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		if _, err := deepspace.Initialize(&el, d, at); !errors.Is(err, orbit.ErrEpochUnresolved) {
			t.Errorf("year %d: expected ErrEpochUnresolved, got %v", year, err)
		}
	}
}

func TestRegimeClassification(t *testing.T) {
	tests := []struct {
		name string
		mm   float64
		ecc  float64
		want deepspace.Regime
	}{
		{"at synchronous lower bound", 0.0034906585, 0.1, deepspace.NonResonant},
		{"just inside synchronous band", 0.0034906586, 0.1, deepspace.Synchronous},
		{"just below synchronous upper bound", 0.0052359876, 0.1, deepspace.Synchronous},
		{"at synchronous upper bound", 0.0052359877, 0.1, deepspace.NonResonant},
		{"half-day lower edge", 0.00826, 0.6, deepspace.HalfDay},
		{"half-day upper edge", 0.00924, 0.6, deepspace.HalfDay},
		{"below half-day band", 0.00825999, 0.6, deepspace.NonResonant},
		{"above half-day band", 0.00924001, 0.6, deepspace.NonResonant},
		{"half-day rate, low eccentricity", 0.0087, 0.3, deepspace.NonResonant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := geoElements()
			el.Eccentricity = tt.ecc
			el.Inclination = 1.0
			d := nearearth.Recover(el)
			d.MeanMotion = tt.mm

			ctx, err := deepspace.Initialize(&el, d, testEpoch)
			if err != nil {
				t.Fatalf("initialize failed: %v", err)
			}
			if got := ctx.Regime(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSecularDeterminism(t *testing.T) {
	el := geoElements()
	ctx1, d := initContext(t, el)
	ctx2, _ := initContext(t, el)

	a := propagate(ctx1, el, d, 1440.0)
	b := propagate(ctx2, el, d, 1440.0)

	if diff := maxElementDiff(a, b); diff > 1e-9 {
		t.Errorf("identical inputs diverged by %g", diff)
	}
}

func TestIncrementalMatchesFresh(t *testing.T) {
	el := geoElements()
	ctx1, d := initContext(t, el)

	var seq orbit.Elements
	for _, tm := range []float64{1000.0, 3000.0, 10000.0} {
		seq = propagate(ctx1, el, d, tm)
	}

	ctx2, _ := initContext(t, el)
	fresh := propagate(ctx2, el, d, 10000.0)

	if diff := maxElementDiff(seq, fresh); diff > 1e-6 {
		t.Errorf("incremental and fresh propagation differ by %g", diff)
	}
	if ctx1.IntegratorSteps() != ctx2.IntegratorSteps() {
		t.Errorf("step counts differ: %d vs %d", ctx1.IntegratorSteps(), ctx2.IntegratorSteps())
	}
}

func TestEpochRestart(t *testing.T) {
	el := geoElements()
	ctx1, d := initContext(t, el)

	// Forward far enough to accumulate integrator state, then cross the
	// epoch backward.
	propagate(ctx1, el, d, 1500.0)
	crossed := propagate(ctx1, el, d, -50.0)

	ctx2, _ := initContext(t, el)
	fresh := propagate(ctx2, el, d, -50.0)

	if diff := maxElementDiff(crossed, fresh); diff > 1e-9 {
		t.Errorf("restarted propagation differs from fresh by %g", diff)
	}
}

func TestNonResonantSkipsIntegrator(t *testing.T) {
	el := geoElements()
	el.Inclination = 0.9
	el.Eccentricity = 0.01
	el.MeanMotion = 0.007 // deep space, outside both resonance bands

	ctx, d := initContext(t, el)
	if ctx.Regime() != deepspace.NonResonant {
		t.Fatalf("expected non-resonant, got %v", ctx.Regime())
	}
	if ctx.Resonant() {
		t.Error("Resonant() should be false")
	}

	out := baseElements(el, d, 1440.0)
	ctx.Secular(&out, 1440.0)

	if ctx.IntegratorSteps() != 0 {
		t.Errorf("expected 0 integrator steps, got %d", ctx.IntegratorSteps())
	}
	if out.MeanMotion != d.MeanMotion {
		t.Errorf("mean motion changed without resonance: %g vs %g", out.MeanMotion, d.MeanMotion)
	}
}

func TestIntegratorStepCount(t *testing.T) {
	el := geoElements()
	ctx, d := initContext(t, el)

	propagate(ctx, el, d, 1440.0)
	if got := ctx.IntegratorSteps(); got != 2 {
		t.Errorf("expected 2 steps after t=1440, got %d", got)
	}

	// Within one step width of the stored state: no new full steps.
	propagate(ctx, el, d, 2000.0)
	if got := ctx.IntegratorSteps(); got != 2 {
		t.Errorf("expected still 2 steps after t=2000, got %d", got)
	}

	propagate(ctx, el, d, 2200.0)
	if got := ctx.IntegratorSteps(); got != 3 {
		t.Errorf("expected 3 steps after t=2200, got %d", got)
	}
}

func TestNegativeInclinationMirror(t *testing.T) {
	el := geoElements()
	ctx, d := initContext(t, el)

	_, ssi, _, _, _ := ctx.SecularRates()
	if ssi == 0 {
		t.Skip("no secular inclination rate for this geometry")
	}

	// Pick a time that drives the secular inclination to -0.001.
	tm := -(el.Inclination + 0.001) / ssi
	out := baseElements(el, d, tm)
	ctx.Secular(&out, tm)

	if !out.IsValid() {
		t.Fatal("elements invalid after mirror")
	}
	if out.Inclination < 0 {
		t.Errorf("inclination still negative: %g", out.Inclination)
	}
	if math.Abs(out.Inclination-0.001) > 1e-6 {
		t.Errorf("expected mirrored inclination ~0.001, got %g", out.Inclination)
	}
}

func TestInclinationBranchContinuity(t *testing.T) {
	const eps = 1e-6
	results := make([]orbit.Elements, 2)

	for i, incl := range []float64{0.2 - eps, 0.2 + eps} {
		el := geoElements()
		el.Inclination = incl
		ctx, d := initContext(t, el)
		results[i] = propagate(ctx, el, d, 1440.0)
	}

	if diff := maxElementDiff(results[0], results[1]); diff > 1e-4 {
		t.Errorf("periodic correction discontinuous across the Lyddane bound: %g", diff)
	}
}

func TestPeriodicCacheStaleness(t *testing.T) {
	el := geoElements()

	// Warm cache evaluated at t=0 serves t=10; a fresh context evaluates
	// at t=10 directly. The cached terms may only be 30 minutes stale, so
	// the two stay close.
	ctx1, d := initContext(t, el)
	propagate(ctx1, el, d, 0.0)
	warm := propagate(ctx1, el, d, 10.0)

	ctx2, _ := initContext(t, el)
	fresh := propagate(ctx2, el, d, 10.0)

	if diff := maxElementDiff(warm, fresh); diff > 1e-3 {
		t.Errorf("stale periodic cache off by %g", diff)
	}
}

func BenchmarkSecularSynchronous(b *testing.B) {
	el := geoElements()
	d := nearearth.Recover(el)
	ctx, err := deepspace.Initialize(&el, d, testEpoch)
	if err != nil {
		b.Fatalf("initialize failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tm := float64(i) * 10.0
		out := baseElements(el, d, tm)
		ctx.Secular(&out, tm)
	}
}

func BenchmarkPeriodic(b *testing.B) {
	el := geoElements()
	d := nearearth.Recover(el)
	ctx, err := deepspace.Initialize(&el, d, testEpoch)
	if err != nil {
		b.Fatalf("initialize failed: %v", err)
	}
	out := baseElements(el, d, 1440.0)
	ctx.Secular(&out, 1440.0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		el2 := out
		ctx.Periodic(&el2, 1440.0)
	}
}
