package metrics

import (
	"math"

	"github.com/san-kum/deeporbit/internal/orbit"
)

// Drift tracks the largest excursion of one element from its first
// observed value.
type Drift struct {
	name   string
	field  func(orbit.Elements) float64
	first  float64
	max    float64
	primed bool
}

// NewDrift builds a drift metric over the given element accessor.
func NewDrift(name string, field func(orbit.Elements) float64) *Drift {
	return &Drift{name: name, field: field}
}

// NewInclinationDrift tracks inclination wander in radians.
func NewInclinationDrift() *Drift {
	return NewDrift("inclination_drift", func(el orbit.Elements) float64 { return el.Inclination })
}

// NewMeanMotionDrift tracks resonance-driven mean motion wander, rad/min.
func NewMeanMotionDrift() *Drift {
	return NewDrift("mean_motion_drift", func(el orbit.Elements) float64 { return el.MeanMotion })
}

// NewEccentricityDrift tracks eccentricity wander.
func NewEccentricityDrift() *Drift {
	return NewDrift("eccentricity_drift", func(el orbit.Elements) float64 { return el.Eccentricity })
}

func (d *Drift) Name() string { return d.name }

func (d *Drift) Observe(el orbit.Elements, t float64) {
	v := d.field(el)
	if !d.primed {
		d.first = v
		d.primed = true
		return
	}
	if dev := math.Abs(v - d.first); dev > d.max {
		d.max = dev
	}
}

func (d *Drift) Value() float64 { return d.max }

func (d *Drift) Reset() {
	d.first = 0
	d.max = 0
	d.primed = false
}
