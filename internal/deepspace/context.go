package deepspace

// Regime is the resonance classification decided once at initialization.
type Regime int

const (
	// NonResonant orbits get only the linear lunisolar secular update.
	NonResonant Regime = iota
	// Synchronous covers the ~24h geopotential resonance band.
	Synchronous
	// HalfDay covers the ~12h, high-eccentricity resonance band.
	HalfDay
)

func (r Regime) String() string {
	switch r {
	case Synchronous:
		return "synchronous"
	case HalfDay:
		return "half-day"
	default:
		return "non-resonant"
	}
}

// Context is the per-satellite perturbation state. It is created by
// Initialize and mutated by every Secular/Periodic call; one context must
// not be shared between goroutines.
type Context struct {
	// Epoch conversions.
	thgr float64 // Greenwich sidereal time at epoch, rad
	ds50 float64 // epoch as days since 1950 Jan 0.0 UT

	// Epoch element snapshot and derived quantities, fixed for the
	// context lifetime.
	eq     float64 // e₀
	xqncl  float64 // i₀
	xmao   float64 // M₀
	omegaq float64 // ω₀
	xnodeo float64 // Ω₀
	xnq    float64 // Brouwer mean motion
	aqnv   float64 // 1/a
	sinq   float64 // sin/cos RAAN₀
	cosq   float64
	sinio  float64
	cosio  float64
	theta2 float64
	sing   float64
	cosg   float64
	eosq   float64
	betao  float64
	betao2 float64
	xmdot  float64
	omgdot float64
	xnodot float64
	xpidot float64

	// Cumulative lunisolar secular rates.
	sse, ssi, ssl, ssg, ssh float64

	// Solar short-period amplitude coefficients.
	se2, si2, sl2, sgh2, sh2 float64
	se3, si3, sl3, sgh3, sh3 float64
	sl4, sgh4                float64

	// Lunar short-period amplitude coefficients.
	ee2, e3, xi2, xi3, xl2, xl3, xl4 float64
	xgh2, xgh3, xgh4, xh2, xh3       float64

	// Mean anomalies of the perturbing bodies at epoch.
	zmos, zmol float64

	regime Regime

	// Half-day resonance amplitudes.
	d2201, d2211, d3210, d3222, d4410 float64
	d4422, d5220, d5232, d5421, d5433 float64

	// Synchronous resonance amplitudes and phases.
	del1, del2, del3    float64
	fasx2, fasx4, fasx6 float64

	// Libration integrator state.
	xlamo float64
	xfact float64
	xli   float64
	xni   float64
	atime float64
	steps uint64 // cumulative full integrator steps, for diagnostics

	// Periodic-term cache: solar (s*) and lunar (l*) contributions last
	// evaluated at savtsn.
	savtsn               float64
	pe, pinc, pl         float64
	sghs, shs, sghl, shl float64
}

// Regime reports the resonance classification.
func (c *Context) Regime() Regime { return c.regime }

// Resonant reports whether the secular propagator runs the libration
// integrator at all.
func (c *Context) Resonant() bool { return c.regime != NonResonant }

// IntegratorSteps returns the cumulative number of full 720-minute
// integrator steps taken over the context lifetime.
func (c *Context) IntegratorSteps() uint64 { return c.steps }

// SecularRates returns the cumulative lunisolar secular rates
// (de/dt, di/dt, dM/dt, dω/dt, dΩ/dt), rad/min except the first.
func (c *Context) SecularRates() (sse, ssi, ssl, ssg, ssh float64) {
	return c.sse, c.ssi, c.ssl, c.ssg, c.ssh
}
