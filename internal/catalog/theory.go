package catalog

const doubleSlitTheory = `
## Wave-Particle Duality

When particles like electrons or photons pass through two slits, they create an interference pattern on a detection screen - a behavior characteristic of waves.

However, when we try to observe which slit the particle passes through, the interference pattern disappears, and we see two bands - particle behavior.

### Key Concepts:
1. **Superposition**: The particle exists in a superposition of passing through both slits
2. **Wave function**: Describes the probability amplitude of the particle's position
3. **Measurement**: Observing the particle collapses the wave function

### Mathematical Description:
The intensity pattern is given by:
$$I(θ) = I_0 \cos^2\left(\frac{πd\sin(θ)}{λ}\right)$$

Where:
- $d$ is the slit separation
- $λ$ is the wavelength
- $θ$ is the angle from the center
`

const tunnelingTheory = `
## Quantum Tunneling

Classically, a particle with energy below a barrier is always reflected. Quantum mechanically its wave function decays inside the barrier instead of vanishing, leaving a finite amplitude on the far side.

### Key Concepts:
1. **Evanescent wave**: Inside the barrier the wave function decays like $e^{-κx}$
2. **Transmission coefficient**: The fraction of incident particles that cross
3. **Resonances**: Above the barrier, transmission oscillates and peaks at unity

### Mathematical Description:
For a rectangular barrier of height $V_0$ and width $a$, with $E < V_0$:
$$T = \left[1 + \frac{V_0^2 \sinh^2(κa)}{4E(V_0 - E)}\right]^{-1}, \quad κ = \frac{\sqrt{2m(V_0 - E)}}{\hbar}$$

The exponential sensitivity to $a$ and $V_0 - E$ underlies alpha decay and the scanning tunneling microscope.
`

const hydrogenTheory = `
## Hydrogen Atom Orbitals

The electron in a hydrogen atom occupies stationary states labeled by the quantum numbers $(n, l, m)$. The radial part of the wave function determines how far from the nucleus the electron is likely to be found.

### Key Concepts:
1. **Quantization**: Energy depends only on $n$: $E_n = -13.6\,\text{eV}/n^2$
2. **Radial nodes**: $R_{nl}$ has $n - l - 1$ nodes
3. **Shells**: The density peak moves outward roughly as $n^2 a_0$

### Mathematical Description:
The radial probability density is
$$P(r) = r^2 |R_{nl}(r)|^2, \quad R_{nl}(r) \propto \left(\frac{2r}{na_0}\right)^l e^{-r/na_0} L^{2l+1}_{n-l-1}\!\left(\frac{2r}{na_0}\right)$$

where $a_0$ is the Bohr radius and $L^α_k$ is a generalized Laguerre polynomial.
`
