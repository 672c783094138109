package deepspace

// bodyConstants parameterizes one perturbing body: its orientation in the
// satellite's epoch frame plus its mean motion, eccentricity and coupling
// coefficient. The same amplitude formulas run once with solar constants
// and once with lunar ones.
type bodyConstants struct {
	zcosg, zsing float64 // perturber argument of perigee
	zcosi, zsini float64 // perturber inclination
	zcosh, zsinh float64 // perturber node relative to the satellite node
	cc           float64
	zn           float64 // perturber mean motion, rad/min
	ze           float64 // perturber eccentricity
}

// bodyTerms is the output of one amplitude pass: secular rates and the
// short-period amplitude coefficients for one perturbing body.
type bodyTerms struct {
	se, si, sl, sgh, sh float64

	e2, e3        float64
	i2, i3        float64
	l2, l3, l4    float64
	gh2, gh3, gh4 float64
	h2, h3        float64
}

// lunisolarTerms runs the third-body secular/periodic amplitude expansion
// for one perturbing body. Pure in the context: it reads only the epoch
// snapshot fields.
func (c *Context) lunisolarTerms(k bodyConstants, xnoi float64) bodyTerms {
	a1 := k.zcosg*k.zcosh + k.zsing*k.zcosi*k.zsinh
	a3 := -k.zsing*k.zcosh + k.zcosg*k.zcosi*k.zsinh
	a7 := -k.zcosg*k.zsinh + k.zsing*k.zcosi*k.zcosh
	a8 := k.zsing * k.zsini
	a9 := k.zsing*k.zsinh + k.zcosg*k.zcosi*k.zcosh
	a10 := k.zcosg * k.zsini
	a2 := c.cosio*a7 + c.sinio*a8
	a4 := c.cosio*a9 + c.sinio*a10
	a5 := -c.sinio*a7 + c.cosio*a8
	a6 := -c.sinio*a9 + c.cosio*a10

	x1 := a1*c.cosg + a2*c.sing
	x2 := a3*c.cosg + a4*c.sing
	x3 := -a1*c.sing + a2*c.cosg
	x4 := -a3*c.sing + a4*c.cosg
	x5 := a5 * c.sing
	x6 := a6 * c.sing
	x7 := a5 * c.cosg
	x8 := a6 * c.cosg

	z31 := 12*x1*x1 - 3.0*x3*x3
	z32 := 24*x1*x2 - 6*x3*x4
	z33 := 12*x2*x2 - 3.0*x4*x4
	z1 := 3.0*(a1*a1+a2*a2) + z31*c.eosq
	z2 := 6.0*(a1*a3+a2*a4) + z32*c.eosq
	z3 := 3.0*(a3*a3+a4*a4) + z33*c.eosq
	z11 := -6*a1*a5 + c.eosq*(-24*x1*x7-6*x3*x5)
	z12 := -6*(a1*a6+a3*a5) + c.eosq*(-24*(x2*x7+x1*x8)-6*(x3*x6+x4*x5))
	z13 := -6*a3*a6 + c.eosq*(-24*x2*x8-6*x4*x6)
	z21 := 6.0*a2*a5 + c.eosq*(24*x1*x5-6*x3*x7)
	z22 := 6.0*(a4*a5+a2*a6) + c.eosq*(24*(x2*x5+x1*x6)-6*(x4*x7+x3*x8))
	z23 := 6.0*a4*a6 + c.eosq*(24*x2*x6-6*x4*x8)
	z1 = z1 + z1 + c.betao2*z31
	z2 = z2 + z2 + c.betao2*z32
	z3 = z3 + z3 + c.betao2*z33

	s3 := k.cc * xnoi
	s2 := -0.5 * s3 / c.betao
	s4 := s3 * c.betao
	s1 := -15 * c.eq * s4
	s5 := x1*x3 + x2*x4
	s6 := x2*x3 + x1*x4
	s7 := x2*x4 - x1*x3

	var t bodyTerms
	t.se = s1 * k.zn * s5
	t.si = s2 * k.zn * (z11 + z13)
	t.sl = -k.zn * s3 * (z1 + z3 - 14 - 6*c.eosq)
	t.sgh = s4 * k.zn * (z31 + z33 - 6)
	t.sh = -k.zn * s2 * (z21 + z23)
	if c.xqncl < shZeroBound {
		t.sh = 0
	}

	t.e2 = 2.0 * s1 * s6
	t.e3 = 2.0 * s1 * s7
	t.i2 = 2.0 * s2 * z12
	t.i3 = 2.0 * s2 * (z13 - z11)
	t.l2 = -2 * s3 * z2
	t.l3 = -2 * s3 * (z3 - z1)
	t.l4 = -2 * s3 * (-21 - 9*c.eosq) * k.ze
	t.gh2 = 2.0 * s4 * z32
	t.gh3 = 2.0 * s4 * (z33 - z31)
	t.gh4 = -18 * s4 * k.ze
	t.h2 = -2 * s2 * z22
	t.h3 = -2 * s2 * (z23 - z21)

	return t
}
