package config

import "sort"

var Presets = map[string]map[string]*Config{
	"square": {
		"default": {Problem: "square", InitialGuess: 1.0, Precision: 64},
		"tight": {
			Problem: "square", InitialGuess: 1.0, Precision: 64,
			Solver: SolverConfig{Tolerance: Float(1e-9)},
		},
		"capped": {
			Problem: "square", InitialGuess: 1.0, Precision: 64,
			Solver: SolverConfig{MaxIterations: Int(1)},
		},
	},
	"cos_minus_x": {
		"default": {Problem: "cos_minus_x", InitialGuess: 1.0, Precision: 64},
		"single": {
			Problem: "cos_minus_x", InitialGuess: 1.0, Precision: 32,
			Solver: SolverConfig{Tolerance: Float(1e-5)},
		},
	},
	"cubic": {
		"default": {Problem: "cubic", InitialGuess: 2.0, Precision: 64},
		"far": {
			Problem: "cubic", InitialGuess: 10.0, Precision: 64,
			Solver: SolverConfig{MaxIterations: Int(100), Step: Float(1e-2)},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(problem, preset string) *Config {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	cfg, ok := problemPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(problem string) []string {
	problemPresets, ok := Presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(problemPresets))
	for name := range problemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
