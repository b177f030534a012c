package experiment

import (
	"fmt"
	"sync"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

// Sweep describes a scan of one slider parameter across an inclusive range.
type Sweep struct {
	Param string
	From  float64
	To    float64
	Steps int
}

// Values returns the swept parameter values in order.
func (s Sweep) Values() []float64 {
	if s.Steps < 2 {
		return []float64{s.From}
	}
	out := make([]float64, s.Steps)
	stride := (s.To - s.From) / float64(s.Steps-1)
	for i := range out {
		out[i] = s.From + float64(i)*stride
	}
	return out
}

// RunSweep computes one result per swept value, overlaying the value on top
// of base. Kernels are pure and share nothing, so every point runs in its
// own goroutine.
func (r *Runner) RunSweep(id string, base map[string]any, sw Sweep) ([]*Result, error) {
	sim, err := r.reg.Lookup(id)
	if err != nil {
		return nil, err
	}
	if sw.Param == "" {
		return nil, fmt.Errorf("sweep parameter not set")
	}

	points := sw.Values()
	results := make([]*Result, len(points))

	var wg sync.WaitGroup
	for i, value := range points {
		wg.Add(1)
		go func(idx int, v float64) {
			defer wg.Done()

			raw := make(map[string]any, len(base)+1)
			for k, val := range base {
				raw[k] = val
			}
			raw[sw.Param] = v

			values := schema.Resolve(sim.Parameters, raw)
			results[idx] = Package(id, sim.Compute(values), values)
		}(i, value)
	}
	wg.Wait()

	return results, nil
}
