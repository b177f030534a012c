package schema

// Values holds the resolved parameters actually handed to a kernel. Sliders
// resolve to float64, toggles to bool. A Values map is built fresh per
// request and never shared.
type Values map[string]any

func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Resolve coerces a raw JSON-decoded parameter map through the schema.
// Missing or mis-typed entries silently fall back to the declared default;
// keys not present in the schema are ignored. Bad input never fails a
// request, it degrades.
func Resolve(params []Parameter, raw map[string]any) Values {
	out := make(Values, len(params))
	for _, p := range params {
		switch p.Kind {
		case Toggle:
			if b, ok := raw[p.Name].(bool); ok {
				out[p.Name] = b
			} else {
				out[p.Name] = p.DefaultBool()
			}
		default:
			if f, ok := asFloat(raw[p.Name]); ok {
				out[p.Name] = f
			} else {
				out[p.Name] = p.Default
			}
		}
	}
	return out
}

// asFloat accepts the numeric types encoding/json and yaml produce.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
