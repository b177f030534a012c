package catalog

import (
	"errors"
	"testing"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

func TestListOrderAndUniqueness(t *testing.T) {
	infos := New().List()

	want := []string{"double-slit", "quantum-tunneling", "hydrogen-atom"}
	if len(infos) != len(want) {
		t.Fatalf("expected %d simulations, got %d", len(want), len(infos))
	}
	for i, id := range want {
		if infos[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, infos[i].ID)
		}
	}

	seen := make(map[string]int)
	for _, info := range infos {
		seen[info.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("id %s listed %d times", id, n)
		}
	}
}

func TestListRowsComplete(t *testing.T) {
	for _, info := range New().List() {
		if info.Name == "" || info.Description == "" || info.Difficulty == "" {
			t.Errorf("%s: incomplete catalog row: %+v", info.ID, info)
		}
		if info.EstimatedTimeMinutes <= 0 {
			t.Errorf("%s: missing estimated time", info.ID)
		}
		if len(info.Topics) == 0 {
			t.Errorf("%s: missing topics", info.ID)
		}
	}
}

func TestDetails(t *testing.T) {
	details, err := New().Details("double-slit")
	if err != nil {
		t.Fatalf("details failed: %v", err)
	}
	if details.ID != "double-slit" {
		t.Errorf("unexpected id: %s", details.ID)
	}
	if len(details.Parameters) != 3 {
		t.Errorf("expected 3 parameters, got %d", len(details.Parameters))
	}
	if details.Theory == "" {
		t.Error("missing theory text")
	}
}

func TestDetailsNotFound(t *testing.T) {
	_, err := New().Details("unknown-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKernelNotFound(t *testing.T) {
	_, err := New().Kernel("unknown-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestKernelDispatch(t *testing.T) {
	reg := New()
	for _, info := range reg.List() {
		kernel, err := reg.Kernel(info.ID)
		if err != nil {
			t.Fatalf("%s: dispatch failed: %v", info.ID, err)
		}

		details, err := reg.Details(info.ID)
		if err != nil {
			t.Fatalf("%s: details failed: %v", info.ID, err)
		}
		pattern := kernel(schema.Resolve(details.Parameters, nil))
		if len(pattern) != 200 {
			t.Errorf("%s: expected 200 samples, got %d", info.ID, len(pattern))
		}
	}
}

func TestSchemaDefaultsWithinBounds(t *testing.T) {
	reg := New()
	for _, info := range reg.List() {
		details, _ := reg.Details(info.ID)
		for _, p := range details.Parameters {
			if p.Kind == schema.Slider && !p.Bounded() {
				t.Errorf("%s/%s: slider without bounds", info.ID, p.Name)
				continue
			}
			if p.Bounded() && (p.Default < *p.Min || p.Default > *p.Max) {
				t.Errorf("%s/%s: default %g outside [%g, %g]",
					info.ID, p.Name, p.Default, *p.Min, *p.Max)
			}
		}
	}
}

func TestRegisterReplacesKeepingOrder(t *testing.T) {
	reg := New()
	reg.Register(&Simulation{
		Info:    Info{ID: "double-slit", Name: "replaced", Description: "x", Difficulty: "beginner", EstimatedTimeMinutes: 1, Topics: []string{"t"}},
		Compute: func(schema.Values) []float64 { return nil },
	})

	infos := reg.List()
	if infos[0].ID != "double-slit" || infos[0].Name != "replaced" {
		t.Errorf("expected replacement to keep position, got %+v", infos[0])
	}
	if len(infos) != 3 {
		t.Errorf("expected 3 simulations after replacement, got %d", len(infos))
	}
}
