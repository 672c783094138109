package deepspace

// initHalfDay computes the geopotential resonance amplitudes for the
// half-day (Molniya-class) regime and returns the drift rate BFACT. The
// eccentricity polynomials branch at e=0.65, 0.7 and 0.715 per the
// reference theory fits.
func (c *Context) initHalfDay() float64 {
	eq := c.eq
	eosq := c.eosq
	eoc := eq * eosq

	g201 := -0.306 - (eq-0.64)*0.440

	var g211, g310, g322, g410, g422, g520 float64
	if eq <= 0.65 {
		g211 = 3.616 - 13.247*eq + 16.290*eosq
		g310 = -19.302 + 117.390*eq - 228.419*eosq + 156.591*eoc
		g322 = -18.9068 + 109.7927*eq - 214.6334*eosq + 146.5816*eoc
		g410 = -41.122 + 242.694*eq - 471.094*eosq + 313.953*eoc
		g422 = -146.407 + 841.880*eq - 1629.014*eosq + 1083.435*eoc
		g520 = -532.114 + 3017.977*eq - 5740*eosq + 3708.276*eoc
	} else {
		g211 = -72.099 + 331.819*eq - 508.738*eosq + 266.724*eoc
		g310 = -346.844 + 1582.851*eq - 2415.925*eosq + 1246.113*eoc
		g322 = -342.585 + 1554.908*eq - 2366.899*eosq + 1215.972*eoc
		g410 = -1052.797 + 4758.686*eq - 7193.992*eosq + 3651.957*eoc
		g422 = -3581.69 + 16178.11*eq - 24462.77*eosq + 12422.52*eoc
		if eq <= 0.715 {
			g520 = 1464.74 - 4664.75*eq + 3763.64*eosq
		} else {
			g520 = -5149.66 + 29936.92*eq - 54087.36*eosq + 31324.56*eoc
		}
	}

	var g533, g521, g532 float64
	if eq < 0.7 {
		g533 = -919.2277 + 4988.61*eq - 9064.77*eosq + 5542.21*eoc
		g521 = -822.71072 + 4568.6173*eq - 8491.4146*eosq + 5337.524*eoc
		g532 = -853.666 + 4690.25*eq - 8624.77*eosq + 5341.4*eoc
	} else {
		g533 = -37995.78 + 161616.52*eq - 229838.2*eosq + 109377.94*eoc
		g521 = -51752.104 + 218913.95*eq - 309468.16*eosq + 146349.42*eoc
		g532 = -40023.88 + 170470.89*eq - 242699.48*eosq + 115605.82*eoc
	}

	sini2 := c.sinio * c.sinio
	f220 := 0.75 * (1.0 + 2*c.cosio + c.theta2)
	f221 := 1.5 * sini2
	f321 := 1.875 * c.sinio * (1.0 - 2*c.cosio - 3.0*c.theta2)
	f322 := -1.875 * c.sinio * (1.0 + 2*c.cosio - 3.0*c.theta2)
	f441 := 35 * sini2 * f220
	f442 := 39.3750 * sini2 * sini2
	f522 := 9.84375 * c.sinio * (sini2*(1.0-2*c.cosio-5*c.theta2) + 0.33333333*(-2+4*c.cosio+6*c.theta2))
	f523 := c.sinio * (4.92187512*sini2*(-2-4*c.cosio+10*c.theta2) + 6.56250012*(1.0+2*c.cosio-3.0*c.theta2))
	f542 := 29.53125 * c.sinio * (2.0 - 8*c.cosio + c.theta2*(-12+8*c.cosio+10*c.theta2))
	f543 := 29.53125 * c.sinio * (-2 - 8*c.cosio + c.theta2*(12+8*c.cosio-10*c.theta2))

	xno2 := c.xnq * c.xnq
	ainv2 := c.aqnv * c.aqnv

	temp1 := 3.0 * xno2 * ainv2
	temp := temp1 * root22
	c.d2201 = temp * f220 * g201
	c.d2211 = temp * f221 * g211
	temp1 *= c.aqnv
	temp = temp1 * root32
	c.d3210 = temp * f321 * g310
	c.d3222 = temp * f322 * g322
	temp1 *= c.aqnv
	temp = 2.0 * temp1 * root44
	c.d4410 = temp * f441 * g410
	c.d4422 = temp * f442 * g422
	temp1 *= c.aqnv
	temp = temp1 * root52
	c.d5220 = temp * f522 * g520
	c.d5232 = temp * f523 * g532
	temp = 2.0 * temp1 * root54
	c.d5421 = temp * f542 * g521
	c.d5433 = temp * f543 * g533

	c.xlamo = c.xmao + 2*c.xnodeo - 2*c.thgr

	bfact := c.xmdot + c.xnodot + c.xnodot - thdt - thdt
	return bfact + c.ssl + c.ssh + c.ssh
}

// initSynchronous computes the resonance amplitudes for the 24-hour
// regime and returns the drift rate BFACT.
func (c *Context) initSynchronous() float64 {
	g200 := 1.0 + c.eosq*(-2.5+0.8125*c.eosq)
	g310 := 1.0 + 2*c.eosq
	g300 := 1.0 + c.eosq*(-6+6.60937*c.eosq)

	f220 := 0.75 * (1.0 + c.cosio) * (1.0 + c.cosio)
	f311 := 0.9375*c.sinio*c.sinio*(1.0+3.0*c.cosio) - 0.75*(1.0+c.cosio)
	f330 := 1.0 + c.cosio
	f330 = 1.875 * f330 * f330 * f330

	c.del1 = 3.0 * c.xnq * c.xnq * c.aqnv * c.aqnv
	c.del2 = 2.0 * c.del1 * f220 * g200 * q22
	c.del3 = 3.0 * c.del1 * f330 * g300 * q33 * c.aqnv
	c.del1 = c.del1 * f311 * g310 * q31 * c.aqnv

	c.fasx2 = 0.13130908
	c.fasx4 = 2.8843198
	c.fasx6 = 0.37448087

	c.xlamo = c.xmao + c.xnodeo + c.omegaq - c.thgr

	bfact := c.xmdot + c.xpidot - thdt
	return bfact + c.ssl + c.ssg + c.ssh
}
