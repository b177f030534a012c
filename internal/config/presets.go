package config

// Presets are named parameter sets per simulation, a shortcut for common
// classroom setups. Values pass through the normal resolver, so anything a
// preset omits falls back to the schema default.
var Presets = map[string]map[string]map[string]any{
	"double-slit": {
		"red-laser": {
			"wavelength": 650.0, "slit_separation": 0.1,
		},
		"narrow-slits": {
			"wavelength": 550.0, "slit_separation": 0.02,
		},
		"observed": {
			"wavelength": 550.0, "slit_separation": 0.1, "observer_mode": true,
		},
	},
	"quantum-tunneling": {
		"thin-barrier": {
			"barrier_height": 1.0, "barrier_width": 0.2,
		},
		"tall-barrier": {
			"barrier_height": 5.0, "barrier_width": 1.0,
		},
	},
	"hydrogen-atom": {
		"ground-state": {
			"principal_n": 1.0, "azimuthal_l": 0.0,
		},
		"2p": {
			"principal_n": 2.0, "azimuthal_l": 1.0,
		},
		"3d": {
			"principal_n": 3.0, "azimuthal_l": 2.0,
		},
	},
}

func GetPreset(simulation, preset string) map[string]any {
	simPresets, ok := Presets[simulation]
	if !ok {
		return nil
	}
	params, ok := simPresets[preset]
	if !ok {
		return nil
	}
	return params
}

func ListPresets(simulation string) []string {
	simPresets, ok := Presets[simulation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(simPresets))
	for name := range simPresets {
		names = append(names, name)
	}
	return names
}
