package config

// Presets maps preset names to benchmark equilibria. "gsm" is the
// golden-section reference design; "iter" and "sparc" approximate the
// published machine parameters used as experimental benchmarks.
var Presets = map[string]*Config{
	"gsm": DefaultConfig(),
	"iter": presetOver(EquilibriumConfig{
		MajorRadius:   6.2,
		MinorRadius:   2.0,
		Field:         5.3,
		Density:       1.06e20,
		Temperature:   8.9,
		Current:       15e6,
		Beta:          0.025,
		Q0:            1.0,
		Q95:           3.0,
		Elongation:    1.7,
		Triangularity: 0.33,
	}),
	"sparc": presetOver(EquilibriumConfig{
		MajorRadius:   1.85,
		MinorRadius:   0.57,
		Field:         12.2,
		Density:       3.1e20,
		Temperature:   7.3,
		Current:       8.7e6,
		Beta:          0.012,
		Q0:            1.0,
		Q95:           3.05,
		Elongation:    1.97,
		Triangularity: 0.54,
	}),
}

func presetOver(eq EquilibriumConfig) *Config {
	cfg := DefaultConfig()
	cfg.Equilibrium = eq
	return cfg
}

// GetPreset returns the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
