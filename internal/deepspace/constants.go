package deepspace

// Lunisolar and resonance constants of the deep-space perturbation theory.
// The values are physically derived and must match the reference theory to
// full printed precision.
const (
	zns  = 1.19459e-5  // solar mean motion, rad/min
	c1ss = 2.9864797e-6
	zes  = 1.675e-2 // solar eccentricity

	znl = 1.5835218e-4 // lunar mean motion, rad/min
	c1l = 4.7968065e-7
	zel = 5.490e-2 // lunar eccentricity

	zcosgs = 1.945905e-1 // solar perigee geometry, fixed in the epoch frame
	zsings = -9.8088458e-1
	zcosis = 9.1744867e-1
	zsinis = 3.9785416e-1

	// Geopotential resonance roots.
	root22 = 1.7891679e-6
	root32 = 3.7393792e-7
	root44 = 7.3636953e-9
	root52 = 1.1428639e-7
	root54 = 2.1765803e-9

	q22 = 1.7891679e-6
	q31 = 2.1460748e-6
	q33 = 2.2123015e-7

	// Phase constants for the half-day resonance harmonics, rad.
	g22 = 5.7686396
	g32 = 9.5240898e-1
	g44 = 1.8014998
	g52 = 1.0508330
	g54 = 4.4108898

	// Earth rotation rate, rad/min.
	thdt = 4.3752691e-3
)

// Resonance regime boundaries on the Brouwer mean motion, rad/min.
const (
	synchBandLow  = 0.0034906585
	synchBandHigh = 0.0052359877
	halfDayLow    = 0.00826
	halfDayHigh   = 0.00924
)

// Integrator step constants, minutes.
const (
	stepp = 720.0
	stepn = -720.0
	step2 = 259200.0 // stepp²/2
)

// Staleness bound on the cached lunisolar periodic terms, minutes.
const periodicStale = 30.0

// Inclinations below lyddaneBound (rad) use the Lyddane formulation in
// Periodic; below shZeroBound (3°) the node-coupling amplitude is dropped.
const (
	lyddaneBound = 0.2
	shZeroBound  = 5.2359877e-2
)
