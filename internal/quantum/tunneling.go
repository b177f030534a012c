package quantum

import (
	"math"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

const (
	electronMass = 9.1093837e-31  // kg
	hbar         = 1.05457182e-34 // J*s
	electronVolt = 1.60217663e-19 // J
)

// Tunneling computes the transmission probability of an electron through a
// rectangular potential barrier, sampled over incident energies from just
// above zero up to twice the barrier height. Below the barrier the exact
// sinh form is used, above it the oscillatory sin form.
func Tunneling(v schema.Values) []float64 {
	v0 := v.Float("barrier_height")          // eV
	width := v.Float("barrier_width") * 1e-9 // nm -> m

	out := make([]float64, PatternSize)
	if v0 <= 0 || width <= 0 {
		for i := range out {
			out[i] = 1.0
		}
		return out
	}

	for i := range out {
		e := (float64(i) + 1) / PatternSize * 2 * v0
		out[i] = transmission(e, v0, width)
	}
	return out
}

func transmission(e, v0, width float64) float64 {
	diff := v0 - e
	// k*width at the matching energy; sinh(x)/x -> 1 as x -> 0, so the
	// two branches share this limit.
	if math.Abs(diff) < 1e-12*v0 {
		ka2 := 2 * electronMass * v0 * electronVolt * width * width / (hbar * hbar)
		return 1 / (1 + ka2/4)
	}

	k := math.Sqrt(2*electronMass*math.Abs(diff)*electronVolt) / hbar
	if diff > 0 {
		s := math.Sinh(k * width)
		return 1 / (1 + v0*v0*s*s/(4*e*diff))
	}
	s := math.Sin(k * width)
	return 1 / (1 + v0*v0*s*s/(4*e*-diff))
}
