package config

import "sort"

var Presets = map[string]map[string]*Config{
	"forces": {
		"default":     withForces(DefaultMass, ForceConfig{10, 0}, ForceConfig{10, 0}, ForceConfig{10, 0}),
		"balanced":    withForces(5, ForceConfig{10, 0}, ForceConfig{10, 120}, ForceConfig{10, 240}),
		"tug":         withForces(20, ForceConfig{120, 0}, ForceConfig{95, 180}),
		"right-angle": withForces(2, ForceConfig{3, 0}, ForceConfig{4, 90}),
	},
	"incline": {
		"default": withIncline(DefaultMass, InclineConfig{30, 0.3, 0.2}),
		"grippy":  withIncline(DefaultMass, InclineConfig{20, 0.6, 0.5}),
		"icy":     withIncline(DefaultMass, InclineConfig{15, 0.05, 0.03}),
		"steep":   withIncline(25, InclineConfig{60, 0.8, 0.6}),
	},
	"friction": {
		"default": withApplied(DefaultMass, AppliedConfig{50, 0, 0.4, 0.3}),
		"gentle":  withApplied(DefaultMass, AppliedConfig{30, 0, 0.4, 0.3}),
		"pull-up": withApplied(DefaultMass, AppliedConfig{60, 30, 0.5, 0.35}),
		"liftoff": withApplied(2, AppliedConfig{40, 80, 0.4, 0.3}),
	},
}

func withForces(mass float64, forces ...ForceConfig) *Config {
	cfg := DefaultConfig()
	cfg.Problem = "forces"
	cfg.Mass = mass
	cfg.Forces = forces
	return cfg
}

func withIncline(mass float64, inc InclineConfig) *Config {
	cfg := DefaultConfig()
	cfg.Problem = "incline"
	cfg.Mass = mass
	cfg.Incline = inc
	return cfg
}

func withApplied(mass float64, app AppliedConfig) *Config {
	cfg := DefaultConfig()
	cfg.Problem = "friction"
	cfg.Mass = mass
	cfg.Applied = app
	return cfg
}

// GetPreset returns a copy of the named preset, or nil.
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
