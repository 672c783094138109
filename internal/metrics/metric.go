// Package metrics provides per-run observers over propagated element
// series.
package metrics

import (
	"github.com/san-kum/deeporbit/internal/nearearth"
	"github.com/san-kum/deeporbit/internal/orbit"
)

// Metric accumulates one statistic over a propagation run.
type Metric interface {
	Name() string
	Observe(el orbit.Elements, t float64)
	Value() float64
	Reset()
}

// Run feeds a sample series through every metric and returns the values
// keyed by name.
func Run(ms []Metric, samples []nearearth.Sample) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, sm := range samples {
		for _, m := range ms {
			m.Observe(sm.Elements, sm.T)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
