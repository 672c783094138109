// Package nearearth supplies the secular theory that brackets the
// deep-space model: it recovers Brouwer mean elements and zonal-harmonic
// rates from the epoch elements, then drives the deep-space context once
// per requested time.
package nearearth

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/san-kum/deeporbit/internal/deepspace"
	"github.com/san-kum/deeporbit/internal/orbit"
)

const (
	xke = 7.43669161e-2 // √(GM) in earth-radii^1.5/min
	ck2 = 5.413079e-4   // J2/2
	ck4 = 6.209887e-7   // -3·J4/8

	twoThirds = 2.0 / 3.0

	// Orbits with shorter periods (minutes) belong to the near-earth
	// models, not this one.
	DeepSpacePeriod = 225.0
)

// Driver owns the propagation state for one satellite.
type Driver struct {
	epoch time.Time
	el0   orbit.Elements
	d     orbit.Derived
	ctx   *deepspace.Context
}

// New validates the epoch elements, recovers the derived quantities and
// initializes the deep-space context.
func New(el orbit.Elements, at time.Time) (*Driver, error) {
	if !el.IsValid() {
		return nil, orbit.ErrInvalidElements
	}
	if p := el.Period(); p < DeepSpacePeriod {
		return nil, fmt.Errorf("%w: period %.1f min", orbit.ErrNotDeepSpace, p)
	}

	d := Recover(el)
	ctx, err := deepspace.Initialize(&el, d, at)
	if err != nil {
		return nil, err
	}

	return &Driver{epoch: at, el0: el, d: d, ctx: ctx}, nil
}

// Epoch returns the driver's epoch timestamp.
func (dr *Driver) Epoch() time.Time { return dr.epoch }

// Derived returns the recovered near-earth quantities.
func (dr *Driver) Derived() orbit.Derived { return dr.d }

// DeepSpace exposes the perturbation context for inspection.
func (dr *Driver) DeepSpace() *deepspace.Context { return dr.ctx }

// PropagateTo returns the corrected mean elements at t minutes since
// epoch. Repeated calls are cheapest when t increases monotonically.
func (dr *Driver) PropagateTo(t float64) (orbit.Elements, error) {
	el := orbit.Elements{
		MeanAnomaly:  dr.el0.MeanAnomaly + dr.d.MDot*t,
		ArgPerigee:   dr.el0.ArgPerigee + dr.d.ArgPDot*t,
		RAAN:         dr.el0.RAAN + dr.d.NodeDot*t,
		Eccentricity: dr.el0.Eccentricity,
		Inclination:  dr.el0.Inclination,
		MeanMotion:   dr.d.MeanMotion,
	}

	dr.ctx.Secular(&el, t)
	dr.ctx.Periodic(&el, t)

	if !el.IsValid() {
		return el, fmt.Errorf("%w: at t=%.1f min", orbit.ErrInvalidElements, t)
	}
	return el, nil
}

// Sample is one propagated point of a time series.
type Sample struct {
	T        float64 // minutes since epoch
	Elements orbit.Elements
}

// Series propagates over [start, stop] with the given step, all in
// minutes since epoch. The context cancels a long series between steps.
func (dr *Driver) Series(ctx context.Context, start, stop, step float64) ([]Sample, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step must be positive, got %f", step)
	}
	if stop < start {
		return nil, fmt.Errorf("stop %.1f before start %.1f", stop, start)
	}

	n := int((stop-start)/step) + 1
	samples := make([]Sample, 0, n)

	for t := start; t <= stop+step/2; t += step {
		select {
		case <-ctx.Done():
			return samples, ctx.Err()
		default:
		}

		el, err := dr.PropagateTo(t)
		if err != nil {
			return samples, err
		}
		samples = append(samples, Sample{T: t, Elements: el})
	}

	return samples, nil
}

// Recover computes the Brouwer mean motion and semi-major axis from the
// Kozai epoch elements, plus the zonal-harmonic secular rates.
func Recover(el orbit.Elements) orbit.Derived {
	cosio := math.Cos(el.Inclination)
	theta2 := cosio * cosio
	x3thm1 := 3.0*theta2 - 1
	eosq := el.Eccentricity * el.Eccentricity
	betao2 := 1.0 - eosq
	betao := math.Sqrt(betao2)

	a1 := math.Pow(xke/el.MeanMotion, twoThirds)
	del1 := 1.5 * ck2 * x3thm1 / (a1 * a1 * betao * betao2)
	ao := a1 * (1.0 - del1*(0.5*twoThirds+del1*(1.0+134.0/81.0*del1)))
	delo := 1.5 * ck2 * x3thm1 / (ao * ao * betao * betao2)
	xnodp := el.MeanMotion / (1.0 + delo)
	aodp := ao / (1.0 - delo)

	sinio := math.Sin(el.Inclination)
	theta4 := theta2 * theta2
	pinvsq := 1.0 / (aodp * aodp * betao2 * betao2)
	temp1 := 3.0 * ck2 * pinvsq * xnodp
	temp2 := temp1 * ck2 * pinvsq
	temp3 := 1.25 * ck4 * pinvsq * pinvsq * xnodp

	xmdot := xnodp + 0.5*temp1*betao*x3thm1 +
		0.0625*temp2*betao*(13-78*theta2+137*theta4)
	x1m5th := 1.0 - 5*theta2
	omgdot := -0.5*temp1*x1m5th +
		0.0625*temp2*(7.0-114*theta2+395*theta4) +
		temp3*(3.0-36*theta2+49*theta4)
	xhdot1 := -temp1 * cosio
	xnodot := xhdot1 + (0.5*temp2*(4.0-19*theta2)+2*temp3*(3.0-7*theta2))*cosio

	return orbit.Derived{
		EccSq:      eosq,
		Beta:       betao,
		BetaSq:     betao2,
		SinIncl:    sinio,
		CosIncl:    cosio,
		Theta2:     theta2,
		SinArgP:    math.Sin(el.ArgPerigee),
		CosArgP:    math.Cos(el.ArgPerigee),
		SemiMajor:  aodp,
		MeanMotion: xnodp,
		MDot:       xmdot,
		ArgPDot:    omgdot,
		NodeDot:    xnodot,
	}
}
