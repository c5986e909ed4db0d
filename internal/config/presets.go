package config

import "sort"

// Presets are named trace-parameter sets. All of them stay inside the
// unit disk and close up at the default depth, so the default viewport
// fits them.
var Presets = map[string]*Config{
	"gasket": {
		TraceA: "2", TraceB: "2",
		Depth: 50, Epsilon: 1e-3,
	},
	"spirals": {
		TraceA: "1.7320508075688772+1i", TraceB: "2",
		Depth: 50, Epsilon: 1e-3,
	},
	"wave": {
		TraceA: "1.91+0.05i", TraceB: "3",
		Depth: 50, Epsilon: 1e-3,
	},
}

// GetPreset returns the named preset merged onto the defaults, or nil
// if the name is unknown. The result is a fresh Config, safe to
// modify.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.TraceA = p.TraceA
	cfg.TraceB = p.TraceB
	cfg.Depth = p.Depth
	cfg.Epsilon = p.Epsilon
	return cfg
}

// PresetNames lists the presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
