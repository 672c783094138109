package metrics

import "github.com/san-kum/deeporbit/internal/orbit"

// Validity reports the fraction of observed samples with finite elements.
type Validity struct {
	samples int
	bad     int
}

func NewValidity() *Validity {
	return &Validity{}
}

func (v *Validity) Name() string { return "validity" }

func (v *Validity) Observe(el orbit.Elements, t float64) {
	v.samples++
	if !el.IsValid() {
		v.bad++
	}
}

func (v *Validity) Value() float64 {
	if v.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(v.bad)/float64(v.samples)
}

func (v *Validity) Reset() {
	v.samples = 0
	v.bad = 0
}
