package deepspace

import (
	"math"
	"sync"

	"github.com/san-kum/deeporbit/internal/orbit"
)

// lunarGeometry is the Moon's orbital orientation relative to the Earth's
// equator on one epoch day, plus the lunisolar mean anomalies at that
// epoch. Read-only once computed.
type lunarGeometry struct {
	zcosgl, zsingl float64 // lunar argument of perigee in the epoch frame
	zcosil, zsinil float64 // lunar inclination to the equator
	zcoshl, zsinhl float64 // lunar node
	zmol           float64 // lunar mean anomaly of perigee at epoch
	zmos           float64 // solar mean anomaly at epoch
}

// Satellites sharing an epoch day share the geometry: the cache holds the
// last computed day and is only refilled when the day changes.
var lunarCache struct {
	mu   sync.Mutex
	day  float64
	geom lunarGeometry
}

// lunarGeometryFor returns the geometry for an epoch expressed as days
// since 1900 Jan 0.5.
func lunarGeometryFor(day float64) lunarGeometry {
	lunarCache.mu.Lock()
	defer lunarCache.mu.Unlock()

	if lunarCache.day != 0 && math.Abs(lunarCache.day-day) <= 1e-6 {
		return lunarCache.geom
	}

	xnodce := 4.5236020 - 9.2422029e-4*day
	stem := math.Sin(xnodce)
	ctem := math.Cos(xnodce)

	var g lunarGeometry
	g.zcosil = 0.91375164 - 0.03568096*ctem
	g.zsinil = math.Sqrt(1.0 - g.zcosil*g.zcosil)
	g.zsinhl = 0.089683511 * stem / g.zsinil
	g.zcoshl = math.Sqrt(1.0 - g.zsinhl*g.zsinhl)

	c := 4.7199672 + 0.22997150*day
	gam := 5.8351514 + 0.0019443680*day
	g.zmol = orbit.Mod2Pi(c - gam)

	zx := 0.39785416 * stem / g.zsinil
	zy := g.zcoshl*ctem + 0.91744867*g.zsinhl*stem
	zx = math.Atan2(zx, zy)
	zx = gam + zx - xnodce
	g.zcosgl = math.Cos(zx)
	g.zsingl = math.Sin(zx)

	g.zmos = orbit.Mod2Pi(6.2565837 + 0.017201977*day)

	lunarCache.day = day
	lunarCache.geom = g
	return g
}
