// Package tui provides an interactive terminal explorer for a simulation:
// cycle through its parameters, nudge them within their schema bounds, and
// watch the pattern re-compute live.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/desci-intelligent-universe/physics-tutorial/internal/catalog"
	"github.com/desci-intelligent-universe/physics-tutorial/internal/schema"
)

const (
	graphWidth  = 80
	graphHeight = 14
)

var (
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(28)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Model contains the simulation being explored and its current parameters.
type Model struct {
	sim      *catalog.Simulation
	values   schema.Values
	pattern  []float64
	selected int
}

// NewModel starts the explorer at the given resolved values.
func NewModel(sim *catalog.Simulation, values schema.Values) Model {
	m := Model{sim: sim, values: values}
	m.pattern = sim.Compute(m.values)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Update handles key events; any parameter change re-computes the pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "right", "l":
		m.selected = (m.selected + 1) % len(m.sim.Parameters)
	case "shift+tab", "left", "h":
		m.selected = (m.selected + len(m.sim.Parameters) - 1) % len(m.sim.Parameters)
	case "up", "k":
		m.adjust(1)
	case "down", "j":
		m.adjust(-1)
	case " ":
		m.toggle()
	case "r":
		for _, p := range m.sim.Parameters {
			if p.Kind == schema.Toggle {
				m.values[p.Name] = p.DefaultBool()
			} else {
				m.values[p.Name] = p.Default
			}
		}
		m.pattern = m.sim.Compute(m.values)
	}
	return m, nil
}

func (m *Model) adjust(direction float64) {
	p := m.sim.Parameters[m.selected]
	if p.Kind == schema.Toggle {
		m.toggle()
		return
	}

	step := 1.0
	if p.Step != nil {
		step = *p.Step
	} else if p.Bounded() {
		step = (*p.Max - *p.Min) / 100
	}

	v := m.values.Float(p.Name) + direction*step
	if p.Min != nil && v < *p.Min {
		v = *p.Min
	}
	if p.Max != nil && v > *p.Max {
		v = *p.Max
	}
	m.values[p.Name] = v
	m.pattern = m.sim.Compute(m.values)
}

func (m *Model) toggle() {
	p := m.sim.Parameters[m.selected]
	if p.Kind != schema.Toggle {
		return
	}
	m.values[p.Name] = !m.values.Bool(p.Name)
	m.pattern = m.sim.Compute(m.values)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(headerStyle.Render(m.sim.Info.Name))
	sb.WriteString("\n")

	graph := asciigraph.Plot(m.pattern,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	)
	sb.WriteString(graphStyle.Render(graph))
	sb.WriteString("\n\n")

	for i, p := range m.sim.Parameters {
		label := labelStyle.Render(p.Label)
		var value string
		if p.Kind == schema.Toggle {
			value = fmt.Sprintf("%v", m.values.Bool(p.Name))
		} else {
			value = fmt.Sprintf("%.3g", m.values.Float(p.Name))
		}
		if i == m.selected {
			sb.WriteString(activeParamStyle.Render("> " + p.Label + "  " + value))
		} else {
			sb.WriteString("  " + label + valueStyle.Render(value))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("tab: next param  up/down: adjust  space: toggle  r: reset  q: quit"))
	return sb.String()
}
