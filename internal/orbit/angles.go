package orbit

import "math"

const TwoPi = 2 * math.Pi

// Mod2Pi reduces an angle to [0, 2π).
func Mod2Pi(v float64) float64 {
	v -= float64(int(v/TwoPi)) * TwoPi
	if v < 0 {
		v += TwoPi
	}
	return v
}
