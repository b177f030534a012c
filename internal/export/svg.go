package export

import (
	"fmt"
	"strings"
)

// ProfileToSVG renders an intensity profile as an SVG polyline. Samples are
// spread evenly across the width; a zero-range profile renders as a flat
// line at mid-height.
func ProfileToSVG(pattern []float64, width, height int, strokeColor string) string {
	if len(pattern) < 2 {
		return ""
	}

	minV, maxV := pattern[0], pattern[0]
	for _, v := range pattern {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	rangeV := maxV - minV
	if rangeV == 0 {
		rangeV = 1
	}
	minV -= rangeV * 0.05
	maxV += rangeV * 0.05
	rangeV = maxV - minV

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range pattern {
		x := float64(i) / float64(len(pattern)-1) * float64(width)
		y := float64(height) - (v-minV)/rangeV*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
