package deepspace

import (
	"math"
	"time"

	"github.com/san-kum/deeporbit/internal/epoch"
	"github.com/san-kum/deeporbit/internal/orbit"
)

// Initialize builds the perturbation context for one satellite from its
// epoch elements, the near-earth derived quantities, and the epoch
// timestamp. It fails only when the epoch cannot be resolved; no partial
// context is returned.
func Initialize(el *orbit.Elements, d orbit.Derived, at time.Time) (*Context, error) {
	res, err := epoch.Resolve(at)
	if err != nil {
		return nil, err
	}

	c := &Context{
		thgr:   res.ThetaG,
		ds50:   res.Days1950,
		eq:     el.Eccentricity,
		xqncl:  el.Inclination,
		xmao:   el.MeanAnomaly,
		omegaq: el.ArgPerigee,
		xnodeo: el.RAAN,
		xnq:    d.MeanMotion,
		aqnv:   1.0 / d.SemiMajor,
		sinq:   math.Sin(el.RAAN),
		cosq:   math.Cos(el.RAAN),
		sinio:  d.SinIncl,
		cosio:  d.CosIncl,
		theta2: d.Theta2,
		sing:   d.SinArgP,
		cosg:   d.CosArgP,
		eosq:   d.EccSq,
		betao:  d.Beta,
		betao2: d.BetaSq,
		xmdot:  d.MDot,
		omgdot: d.ArgPDot,
		xnodot: d.NodeDot,
		xpidot: d.ArgPDot + d.NodeDot,
		savtsn: 1e20,
	}

	// Lunar orbital geometry for the epoch day, shared across satellites.
	// Days since 1900 Jan 0.5.
	geom := lunarGeometryFor(c.ds50 + 18261.5)
	c.zmos = geom.zmos
	c.zmol = geom.zmol

	xnoi := 1.0 / c.xnq

	// Solar pass, then lunar. The lunar node constants fold in the
	// satellite node, so the two passes share the epoch frame.
	solar := c.lunisolarTerms(bodyConstants{
		zcosg: zcosgs, zsing: zsings,
		zcosi: zcosis, zsini: zsinis,
		zcosh: c.cosq, zsinh: c.sinq,
		cc: c1ss, zn: zns, ze: zes,
	}, xnoi)

	c.se2, c.se3 = solar.e2, solar.e3
	c.si2, c.si3 = solar.i2, solar.i3
	c.sl2, c.sl3, c.sl4 = solar.l2, solar.l3, solar.l4
	c.sgh2, c.sgh3, c.sgh4 = solar.gh2, solar.gh3, solar.gh4
	c.sh2, c.sh3 = solar.h2, solar.h3

	c.sse = solar.se
	c.ssi = solar.si
	c.ssl = solar.sl
	c.ssh = solar.sh / c.sinio
	c.ssg = solar.sgh - c.cosio*c.ssh

	lunar := c.lunisolarTerms(bodyConstants{
		zcosg: geom.zcosgl, zsing: geom.zsingl,
		zcosi: geom.zcosil, zsini: geom.zsinil,
		zcosh: geom.zcoshl*c.cosq + geom.zsinhl*c.sinq,
		zsinh: c.sinq*geom.zcoshl - c.cosq*geom.zsinhl,
		cc: c1l, zn: znl, ze: zel,
	}, xnoi)

	c.ee2, c.e3 = lunar.e2, lunar.e3
	c.xi2, c.xi3 = lunar.i2, lunar.i3
	c.xl2, c.xl3, c.xl4 = lunar.l2, lunar.l3, lunar.l4
	c.xgh2, c.xgh3, c.xgh4 = lunar.gh2, lunar.gh3, lunar.gh4
	c.xh2, c.xh3 = lunar.h2, lunar.h3

	c.sse += lunar.se
	c.ssi += lunar.si
	c.ssl += lunar.sl
	c.ssg += lunar.sgh - c.cosio/c.sinio*lunar.sh
	c.ssh += lunar.sh / c.sinio

	// Resonance classification. Outside both bands the context is done:
	// no resonance coefficients exist and Secular never integrates.
	var bfact float64
	switch {
	case c.xnq > synchBandLow && c.xnq < synchBandHigh:
		c.regime = Synchronous
		bfact = c.initSynchronous()
	case c.xnq >= halfDayLow && c.xnq <= halfDayHigh && c.eq >= 0.5:
		c.regime = HalfDay
		bfact = c.initHalfDay()
	default:
		c.regime = NonResonant
		return c, nil
	}

	c.xfact = bfact - c.xnq
	c.xli = c.xlamo
	c.xni = c.xnq
	c.atime = 0

	return c, nil
}
