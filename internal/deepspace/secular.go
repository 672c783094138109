package deepspace

import (
	"math"

	"github.com/san-kum/deeporbit/internal/orbit"
)

// Secular advances el to the signed elapsed time t, minutes since epoch.
// The linear lunisolar rates always apply; the libration integrator runs
// only for resonant regimes, and its stored state makes repeated calls
// with monotonic t cost O(Δt/720) rather than O(t/720).
func (c *Context) Secular(el *orbit.Elements, t float64) {
	el.MeanAnomaly += c.ssl * t
	el.ArgPerigee += c.ssg * t
	el.RAAN += c.ssh * t
	el.Eccentricity = c.eq + c.sse*t
	el.Inclination = c.xqncl + c.ssi*t

	// A secularly negative inclination is mirrored, shifting the node
	// and perigee by π to keep the orbit plane fixed.
	if el.Inclination < 0 {
		el.Inclination = -el.Inclination
		el.RAAN += math.Pi
		el.ArgPerigee -= math.Pi
	}

	if c.regime == NonResonant {
		return
	}

	// Epoch restart: stored integrator state is valid only on the same
	// side of the epoch as t.
	if c.atime == 0 || (t >= 0 && c.atime < 0) || (t < 0 && c.atime >= 0) {
		c.atime = 0
		c.xni = c.xnq
		c.xli = c.xlamo
	}

	// Full 720-minute steps toward t, forward or backward.
	for math.Abs(t-c.atime) >= stepp {
		delt := stepp
		if t < c.atime {
			delt = stepn
		}
		xndot, xnddt, xldot := c.resonanceDots()
		c.xli += xldot*delt + xndot*step2
		c.xni += xndot*delt + xnddt*step2
		c.atime += delt
		c.steps++
	}

	// Final partial step, |ft| < 720 strictly.
	ft := t - c.atime
	xndot, xnddt, xldot := c.resonanceDots()
	xn := c.xni + xndot*ft + xnddt*ft*ft*0.5
	xl := c.xli + xldot*ft + xndot*ft*ft*0.5

	// Convert the libration angle back to a mean anomaly.
	temp := -el.RAAN + c.thgr + t*thdt
	if c.regime == Synchronous {
		el.MeanAnomaly = xl - el.ArgPerigee + temp
	} else {
		el.MeanAnomaly = xl + temp + temp
	}
	el.MeanMotion = xn
}

// resonanceDots evaluates the resonant harmonic sums at the current
// integrator state: dn/dt, its derivative scaled by the total angular
// rate, and the libration rate.
func (c *Context) resonanceDots() (xndot, xnddt, xldot float64) {
	if c.regime == Synchronous {
		xndot = c.del1*math.Sin(c.xli-c.fasx2) +
			c.del2*math.Sin(2.0*(c.xli-c.fasx4)) +
			c.del3*math.Sin(3.0*(c.xli-c.fasx6))
		xnddt = c.del1*math.Cos(c.xli-c.fasx2) +
			2*c.del2*math.Cos(2.0*(c.xli-c.fasx4)) +
			3.0*c.del3*math.Cos(3.0*(c.xli-c.fasx6))
	} else {
		xomi := c.omegaq + c.omgdot*c.atime
		x2omi := xomi + xomi
		x2li := c.xli + c.xli
		xndot = c.d2201*math.Sin(x2omi+c.xli-g22) +
			c.d2211*math.Sin(c.xli-g22) +
			c.d3210*math.Sin(xomi+c.xli-g32) +
			c.d3222*math.Sin(-xomi+c.xli-g32) +
			c.d4410*math.Sin(x2omi+x2li-g44) +
			c.d4422*math.Sin(x2li-g44) +
			c.d5220*math.Sin(xomi+c.xli-g52) +
			c.d5232*math.Sin(-xomi+c.xli-g52) +
			c.d5421*math.Sin(xomi+x2li-g54) +
			c.d5433*math.Sin(-xomi+x2li-g54)
		xnddt = c.d2201*math.Cos(x2omi+c.xli-g22) +
			c.d2211*math.Cos(c.xli-g22) +
			c.d3210*math.Cos(xomi+c.xli-g32) +
			c.d3222*math.Cos(-xomi+c.xli-g32) +
			c.d5220*math.Cos(xomi+c.xli-g52) +
			c.d5232*math.Cos(-xomi+c.xli-g52) +
			2*(c.d4410*math.Cos(x2omi+x2li-g44)+
				c.d4422*math.Cos(x2li-g44)+
				c.d5421*math.Cos(xomi+x2li-g54)+
				c.d5433*math.Cos(-xomi+x2li-g54))
	}
	xldot = c.xni + c.xfact
	xnddt *= xldot
	return xndot, xnddt, xldot
}
