package catalog

import (
	"errors"
	"fmt"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/quantum"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

// ErrNotFound is the only error the catalog produces; the transport layer
// maps it to 404.
var ErrNotFound = errors.New("unknown simulation")

// Kernel is a pure compute function from resolved parameters to a sample
// array.
type Kernel func(schema.Values) []float64

// Info is one catalog listing row.
type Info struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Description          string   `json:"description"`
	Difficulty           string   `json:"difficulty"`
	EstimatedTimeMinutes int      `json:"estimated_time_minutes"`
	Topics               []string `json:"topics"`
}

// Details is the full record served for a single simulation.
type Details struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  []schema.Parameter `json:"parameters"`
	Theory      string             `json:"theory"`
}

// Simulation binds a catalog entry to its parameter schema and kernel.
type Simulation struct {
	Info       Info
	Abstract   string // detail-page description, longer than Info.Description
	Parameters []schema.Parameter
	Theory     string
	Compute    Kernel
}

// Registry maps simulation ids to their entries. The listing preserves
// registration order.
type Registry struct {
	order []string
	sims  map[string]*Simulation
}

// New returns a registry populated with the built-in simulations.
func New() *Registry {
	r := &Registry{sims: make(map[string]*Simulation)}
	r.Register(doubleSlit())
	r.Register(tunneling())
	r.Register(hydrogen())
	return r
}

// Register adds a simulation; a duplicate id replaces the entry but keeps
// its listing position.
func (r *Registry) Register(s *Simulation) {
	if _, ok := r.sims[s.Info.ID]; !ok {
		r.order = append(r.order, s.Info.ID)
	}
	r.sims[s.Info.ID] = s
}

// List returns the catalog in registration order. It never fails.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sims[id].Info)
	}
	return out
}

// Lookup returns the full entry for id.
func (r *Registry) Lookup(id string) (*Simulation, error) {
	s, ok := r.sims[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return s, nil
}

// Details returns the schema and theory text for id.
func (r *Registry) Details(id string) (Details, error) {
	s, err := r.Lookup(id)
	if err != nil {
		return Details{}, err
	}
	return Details{
		ID:          s.Info.ID,
		Name:        s.Info.Name,
		Description: s.Abstract,
		Parameters:  s.Parameters,
		Theory:      s.Theory,
	}, nil
}

// Kernel returns the compute function bound to id.
func (r *Registry) Kernel(id string) (Kernel, error) {
	s, err := r.Lookup(id)
	if err != nil {
		return nil, err
	}
	return s.Compute, nil
}

func doubleSlit() *Simulation {
	return &Simulation{
		Info: Info{
			ID:                   "double-slit",
			Name:                 "Double-Slit Experiment",
			Description:          "Explore wave-particle duality through the classic quantum experiment",
			Difficulty:           "beginner",
			EstimatedTimeMinutes: 15,
			Topics:               []string{"wave-particle duality", "interference", "quantum measurement"},
		},
		Abstract: "The double-slit experiment demonstrates the fundamentally probabilistic nature of quantum mechanical phenomena.",
		Parameters: []schema.Parameter{
			{Name: "wavelength", Label: "Wavelength (nm)", Kind: schema.Slider,
				Min: schema.F(400), Max: schema.F(700), Step: schema.F(10), Default: 550},
			{Name: "slit_separation", Label: "Slit Separation (mm)", Kind: schema.Slider,
				Min: schema.F(0.01), Max: schema.F(1.0), Step: schema.F(0.01), Default: 0.1},
			{Name: "observer_mode", Label: "Observer Mode", Kind: schema.Toggle, Default: 0},
		},
		Theory:  doubleSlitTheory,
		Compute: quantum.DoubleSlit,
	}
}

func tunneling() *Simulation {
	return &Simulation{
		Info: Info{
			ID:                   "quantum-tunneling",
			Name:                 "Quantum Tunneling",
			Description:          "Visualize how particles can pass through potential barriers",
			Difficulty:           "intermediate",
			EstimatedTimeMinutes: 20,
			Topics:               []string{"tunneling", "potential barriers", "probability"},
		},
		Abstract: "Quantum tunneling lets a particle cross a barrier even when its energy is below the barrier height, with a probability that decays exponentially in the barrier width.",
		Parameters: []schema.Parameter{
			{Name: "barrier_height", Label: "Barrier Height (eV)", Kind: schema.Slider,
				Min: schema.F(0.1), Max: schema.F(10), Step: schema.F(0.1), Default: 1},
			{Name: "barrier_width", Label: "Barrier Width (nm)", Kind: schema.Slider,
				Min: schema.F(0.1), Max: schema.F(5), Step: schema.F(0.1), Default: 1},
		},
		Theory:  tunnelingTheory,
		Compute: quantum.Tunneling,
	}
}

func hydrogen() *Simulation {
	return &Simulation{
		Info: Info{
			ID:                   "hydrogen-atom",
			Name:                 "Hydrogen Atom Orbitals",
			Description:          "Interactive 3D visualization of electron orbitals",
			Difficulty:           "intermediate",
			EstimatedTimeMinutes: 25,
			Topics:               []string{"orbitals", "energy levels", "spectral lines"},
		},
		Abstract: "The hydrogen atom is the only atom with an exact quantum solution; its radial probability density shows where the electron is most likely to be found.",
		Parameters: []schema.Parameter{
			{Name: "principal_n", Label: "Principal Quantum Number n", Kind: schema.Slider,
				Min: schema.F(1), Max: schema.F(4), Step: schema.F(1), Default: 1},
			{Name: "azimuthal_l", Label: "Azimuthal Quantum Number l", Kind: schema.Slider,
				Min: schema.F(0), Max: schema.F(3), Step: schema.F(1), Default: 0},
		},
		Theory:  hydrogenTheory,
		Compute: quantum.Hydrogen,
	}
}
