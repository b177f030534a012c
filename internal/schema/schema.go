package schema

// Kind distinguishes the two parameter widgets exposed to the UI.
type Kind string

const (
	Slider Kind = "slider"
	Toggle Kind = "toggle"
)

// Parameter describes one tunable input of a simulation. Min, Max and Step
// are only set for sliders; bounds are advisory and not enforced at
// resolution time.
type Parameter struct {
	Name    string   `json:"name" yaml:"name"`
	Label   string   `json:"label" yaml:"label"`
	Kind    Kind     `json:"kind" yaml:"kind"`
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step    *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Default float64  `json:"default" yaml:"default"`
}

// DefaultBool interprets the numeric default of a toggle.
func (p Parameter) DefaultBool() bool { return p.Default != 0 }

// Bounded reports whether the slider declares both bounds.
func (p Parameter) Bounded() bool { return p.Min != nil && p.Max != nil }

func F(v float64) *float64 { return &v }
