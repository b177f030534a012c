// Package experiment orchestrates a single simulation request: dispatch the
// id through the catalog, resolve raw parameters through the schema, invoke
// the kernel, and package the result.
package experiment

import (
	"github.com/desci-intelligent-universe/physics-tutorial/internal/catalog"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

// Runner executes simulations against a catalog. It is stateless and safe
// for concurrent use.
type Runner struct {
	reg *catalog.Registry
}

func NewRunner(reg *catalog.Registry) *Runner {
	return &Runner{reg: reg}
}

// Run computes one simulation. Missing or malformed raw values degrade to
// schema defaults; the only failure is an unknown id, reported before any
// computation starts.
func (r *Runner) Run(id string, raw map[string]any) (*Result, error) {
	sim, err := r.reg.Lookup(id)
	if err != nil {
		return nil, err
	}
	values := schema.Resolve(sim.Parameters, raw)
	pattern := sim.Compute(values)
	return Package(id, pattern, values), nil
}

// Resolve exposes parameter resolution for callers that need the concrete
// values without running the kernel (the TUI edits them in place).
func (r *Runner) Resolve(id string, raw map[string]any) (schema.Values, error) {
	sim, err := r.reg.Lookup(id)
	if err != nil {
		return nil, err
	}
	return schema.Resolve(sim.Parameters, raw), nil
}
