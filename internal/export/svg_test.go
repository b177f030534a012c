package export

import (
	"strings"
	"testing"
)

func TestProfileToSVG(t *testing.T) {
	pattern := []float64{0, 0.5, 1, 0.5, 0}
	svg := ProfileToSVG(pattern, 400, 200, "#00ff88")

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="200"`) {
		t.Error("missing svg dimensions")
	}
	if !strings.Contains(svg, `stroke="#00ff88"`) {
		t.Error("missing stroke color")
	}
	if got := strings.Count(svg, "L"); got != len(pattern)-1 {
		t.Errorf("expected %d line segments, got %d", len(pattern)-1, got)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestProfileToSVGFlat(t *testing.T) {
	svg := ProfileToSVG([]float64{0.3, 0.3, 0.3}, 100, 50, "red")
	if svg == "" {
		t.Error("flat profile should still render")
	}
}

func TestProfileToSVGTooShort(t *testing.T) {
	if svg := ProfileToSVG([]float64{1}, 100, 50, "red"); svg != "" {
		t.Error("expected empty output for a single sample")
	}
}
