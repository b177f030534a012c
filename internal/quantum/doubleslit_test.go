package quantum

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

func defaultSlitValues(observed bool) schema.Values {
	return schema.Values{
		"wavelength":      550.0,
		"slit_separation": 0.1,
		"observer_mode":   observed,
	}
}

func TestDoubleSlitShape(t *testing.T) {
	g := NewWithT(t)

	for _, observed := range []bool{false, true} {
		pattern := DoubleSlit(defaultSlitValues(observed))

		g.Expect(pattern).To(HaveLen(PatternSize))
		for _, v := range pattern {
			g.Expect(math.IsNaN(v) || math.IsInf(v, 0)).To(BeFalse())
			g.Expect(v).To(BeNumerically(">=", 0))
			g.Expect(v).To(BeNumerically("<=", 1.0001))
		}
	}
}

func TestDoubleSlitDeterminism(t *testing.T) {
	g := NewWithT(t)

	a := DoubleSlit(defaultSlitValues(false))
	b := DoubleSlit(defaultSlitValues(false))
	g.Expect(a).To(Equal(b))
}

func TestDoubleSlitWaveVsParticleCenter(t *testing.T) {
	g := NewWithT(t)

	wave := DoubleSlit(defaultSlitValues(false))
	particle := DoubleSlit(defaultSlitValues(true))

	// Center sample sits at theta=0: constructive interference for the
	// wave, the gap between the two bands for the particle.
	center := PatternSize / 2
	g.Expect(wave[center]).To(BeNumerically("~", 1.0, 1e-9))
	g.Expect(particle[center]).To(BeNumerically("<", 0.2))
	g.Expect(wave[center]).To(BeNumerically(">", particle[center]))
}

func TestDoubleSlitParticleBands(t *testing.T) {
	g := NewWithT(t)

	particle := DoubleSlit(defaultSlitValues(true))

	// Bands are centered at theta = +-0.05 rad, i.e. x = +-tan(0.05) m.
	band := int(math.Tan(0.05)/0.001) + PatternSize/2
	g.Expect(particle[band]).To(BeNumerically(">", particle[PatternSize/2]))
	g.Expect(particle[PatternSize-band]).To(BeNumerically(">", particle[PatternSize/2]))
}

func TestDoubleSlitSymmetry(t *testing.T) {
	g := NewWithT(t)

	wave := DoubleSlit(defaultSlitValues(false))

	// theta is odd in x and cos^2 even, so samples mirror around i=100.
	for i := 1; i < PatternSize/2; i++ {
		g.Expect(wave[PatternSize/2-i]).To(BeNumerically("~", wave[PatternSize/2+i], 1e-9))
	}
}

func TestDoubleSlitSeparationTightensFringes(t *testing.T) {
	g := NewWithT(t)

	wide := DoubleSlit(schema.Values{"wavelength": 550.0, "slit_separation": 0.1, "observer_mode": false})
	narrow := DoubleSlit(schema.Values{"wavelength": 550.0, "slit_separation": 0.02, "observer_mode": false})

	g.Expect(countMinima(wide)).To(BeNumerically(">", countMinima(narrow)))
}

func countMinima(pattern []float64) int {
	count := 0
	for i := 1; i < len(pattern)-1; i++ {
		if pattern[i] < pattern[i-1] && pattern[i] < pattern[i+1] {
			count++
		}
	}
	return count
}
