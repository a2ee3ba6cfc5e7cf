package config

// Presets holds named configurations for real black holes, scaled to
// their actual (approximate) masses in solar units. The camera and
// disk parameters are chosen for a representative view of each, not
// derived from observation.
var Presets = map[string]*RunConfig{
	"sgr-a-star": {
		SolarMass:         4.3e6,
		IncludeDisk:       true,
		EddingtonFraction: 0.01,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		ObserverRadius:    60,
		Inclination:       60,
		Fov:               DefaultFov,
		Threads:           DefaultThreads,
		OutputDir:         "output",
	},
	"m87-star": {
		SolarMass:         6.5e9,
		IncludeDisk:       true,
		EddingtonFraction: 0.001,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		ObserverRadius:    80,
		Inclination:       17,
		Fov:               DefaultFov,
		Threads:           DefaultThreads,
		OutputDir:         "output",
	},
	"cygnus-x1": {
		SolarMass:         21.2,
		IncludeDisk:       true,
		EddingtonFraction: 0.3,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		ObserverRadius:    50,
		Inclination:       27,
		Fov:               DefaultFov,
		Threads:           DefaultThreads,
		OutputDir:         "output",
	},
	"stellar-default": {
		SolarMass:         DefaultSolarMass,
		IncludeDisk:       true,
		EddingtonFraction: DefaultEddingtonFraction,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		ObserverRadius:    DefaultObserverRadius,
		Inclination:       DefaultInclination,
		Fov:               DefaultFov,
		Threads:           DefaultThreads,
		OutputDir:         "output",
	},
}

// GetPreset returns a copy of the named preset, or nil if it does not
// exist. A copy is returned so a caller mutating it cannot corrupt the
// shared Presets map.
func GetPreset(name string) *RunConfig {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *preset
	return &cfg
}

// ListPresets returns the names of every known preset.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
