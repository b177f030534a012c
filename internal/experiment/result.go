package experiment

import (
	"time"

	"github.com/google/uuid"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

// Result is the immutable envelope returned for one computation. Data holds
// the sample array under "pattern" plus the resolved parameters that were
// actually used, so callers can see which defaults were substituted.
type Result struct {
	ID           string         `json:"id"`
	SimulationID string         `json:"simulation_id"`
	Data         map[string]any `json:"data"`
	ComputedAt   string         `json:"computed_at"`
}

// Package assembles a Result with a fresh random identifier and a UTC
// RFC3339 timestamp. It has no failure mode.
func Package(simulationID string, pattern []float64, used schema.Values) *Result {
	data := make(map[string]any, len(used)+1)
	data["pattern"] = pattern
	for name, value := range used {
		data[name] = value
	}
	return &Result{
		ID:           uuid.NewString(),
		SimulationID: simulationID,
		Data:         data,
		ComputedAt:   time.Now().UTC().Format(time.RFC3339),
	}
}

// Pattern returns the sample array, or nil if the envelope was built
// elsewhere without one.
func (r *Result) Pattern() []float64 {
	p, _ := r.Data["pattern"].([]float64)
	return p
}
