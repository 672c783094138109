package deepspace

import (
	"math"

	"github.com/san-kum/deeporbit/internal/orbit"
)

// Periodic applies the short-period lunisolar corrections for elapsed time
// t. It must follow the Secular call for the same t. The solar and lunar
// term sums are cached and refreshed only when t moves 30 minutes or more
// from the last evaluation; the perigee/node terms are cheap and always
// recomputed.
func (c *Context) Periodic(el *orbit.Elements, t float64) {
	sinis := math.Sin(el.Inclination)
	cosis := math.Cos(el.Inclination)

	if math.Abs(c.savtsn-t) >= periodicStale {
		c.savtsn = t

		// Solar terms, with the Earth-orbit eccentricity correction.
		zm := c.zmos + zns*t
		zf := zm + 2*zes*math.Sin(zm)
		sinzf := math.Sin(zf)
		f2 := 0.5*sinzf*sinzf - 0.25
		f3 := -0.5 * sinzf * math.Cos(zf)
		ses := c.se2*f2 + c.se3*f3
		sis := c.si2*f2 + c.si3*f3
		sls := c.sl2*f2 + c.sl3*f3 + c.sl4*sinzf
		c.sghs = c.sgh2*f2 + c.sgh3*f3 + c.sgh4*sinzf
		c.shs = c.sh2*f2 + c.sh3*f3

		// Lunar terms, same shape.
		zm = c.zmol + znl*t
		zf = zm + 2*zel*math.Sin(zm)
		sinzf = math.Sin(zf)
		f2 = 0.5*sinzf*sinzf - 0.25
		f3 = -0.5 * sinzf * math.Cos(zf)
		sel := c.ee2*f2 + c.e3*f3
		sil := c.xi2*f2 + c.xi3*f3
		sll := c.xl2*f2 + c.xl3*f3 + c.xl4*sinzf
		c.sghl = c.xgh2*f2 + c.xgh3*f3 + c.xgh4*sinzf
		c.shl = c.xh2*f2 + c.xh3*f3

		c.pe = ses + sel
		c.pinc = sis + sil
		c.pl = sls + sll
	}

	pgh := c.sghs + c.sghl
	ph := c.shs + c.shl
	el.Inclination += c.pinc
	el.Eccentricity += c.pe

	if c.xqncl >= lyddaneBound {
		// Apply periodics directly.
		ph /= c.sinio
		pgh -= c.cosio * ph
		el.ArgPerigee += pgh
		el.RAAN += ph
		el.MeanAnomaly += c.pl
		return
	}

	c.lyddane(el, sinis, cosis, pgh, ph)
}

// lyddane applies the periodics near zero inclination, where dividing the
// node term by sin(i) is singular. The node is carried through the
// (α, β) = sin(i)·(sin Ω, cos Ω) pair of the pre-update inclination and
// recombined by atan2; the perigee is re-derived from the combined true
// longitude.
func (c *Context) lyddane(el *orbit.Elements, sinis, cosis, pgh, ph float64) {
	sinok := math.Sin(el.RAAN)
	cosok := math.Cos(el.RAAN)

	alfdp := sinis*sinok + ph*cosok + c.pinc*cosis*sinok
	betdp := sinis*cosok - ph*sinok + c.pinc*cosis*cosok

	el.RAAN = orbit.Mod2Pi(el.RAAN)
	xls := el.MeanAnomaly + el.ArgPerigee + cosis*el.RAAN
	xls += c.pl + pgh - c.pinc*el.RAAN*sinis

	xnoh := el.RAAN
	el.RAAN = math.Atan2(alfdp, betdp)

	// Keep the node on the same 2π branch as before the recombination.
	if math.Abs(xnoh-el.RAAN) > math.Pi {
		if el.RAAN < xnoh {
			el.RAAN += orbit.TwoPi
		} else {
			el.RAAN -= orbit.TwoPi
		}
	}

	el.MeanAnomaly += c.pl
	el.ArgPerigee = xls - el.MeanAnomaly - math.Cos(el.Inclination)*el.RAAN
}
