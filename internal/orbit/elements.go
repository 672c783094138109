package orbit

import "math"

// Elements is an osculating orbital element set. The propagation routines
// mutate it in place; they never allocate or retain one.
type Elements struct {
	Eccentricity float64
	Inclination  float64 // rad
	MeanAnomaly  float64 // rad
	RAAN         float64 // right ascension of ascending node, rad
	ArgPerigee   float64 // rad
	MeanMotion   float64 // rad/min
}

// Clone returns a copy, leaving the receiver untouched.
func (e *Elements) Clone() Elements {
	return *e
}

// IsValid reports whether every field is a finite number.
func (e *Elements) IsValid() bool {
	for _, v := range []float64{e.Eccentricity, e.Inclination, e.MeanAnomaly, e.RAAN, e.ArgPerigee, e.MeanMotion} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Period returns the anomalistic period in minutes.
func (e *Elements) Period() float64 {
	if e.MeanMotion == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / e.MeanMotion
}

// Derived carries the quantities the near-earth secular theory recovers
// from the epoch elements. The deep-space initializer consumes these as-is
// rather than recomputing them.
type Derived struct {
	EccSq     float64 // e₀²
	Beta      float64 // √(1−e₀²)
	BetaSq    float64 // 1−e₀²
	SinIncl   float64
	CosIncl   float64
	Theta2    float64 // cos²(inclination)
	SinArgP   float64
	CosArgP   float64
	SemiMajor float64 // Brouwer semi-major axis, earth radii
	// Recovered Brouwer mean motion, rad/min.
	MeanMotion float64
	// Secular rates from the zonal-harmonic theory, rad/min.
	MDot    float64 // mean anomaly
	ArgPDot float64 // argument of perigee
	NodeDot float64 // RAAN
}
