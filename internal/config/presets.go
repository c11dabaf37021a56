package config

import (
	"errors"
	"sort"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"no-wolves": {
		Years:        20,
		InitState:    InitStateConfig{Rabbits: 50},
		Rates:        RatesConfig{RabbitGrowth: 0.10, WolfGrowth: 0.08, WolfDeath: 0.06, Predation: 0.01},
		Introduction: IntroductionConfig{Year: 5, Count: 0},
	},
	"pack": {
		Years:        30,
		InitState:    InitStateConfig{Rabbits: 200},
		Rates:        RatesConfig{RabbitGrowth: 0.10, WolfGrowth: 0.08, WolfDeath: 0.06, Predation: 0.05},
		Introduction: IntroductionConfig{Year: 3, Count: 40},
	},
	"harsh-winter": {
		Years:        20,
		InitState:    InitStateConfig{Rabbits: 50},
		Rates:        RatesConfig{RabbitGrowth: 0.10, WolfGrowth: 0.08, WolfDeath: 1.0, Predation: 0.01},
		Introduction: IntroductionConfig{Year: 5, Count: 10},
	},
	"overhunted": {
		Years:        25,
		InitState:    InitStateConfig{Rabbits: 50, Wolves: 5},
		Rates:        RatesConfig{RabbitGrowth: 0.05, WolfGrowth: 0.12, WolfDeath: 0.02, Predation: 0.25},
		Introduction: IntroductionConfig{Year: 10, Count: 10},
	},
	"century": {
		Years:        100,
		InitState:    InitStateConfig{Rabbits: 50},
		Rates:        RatesConfig{RabbitGrowth: 0.10, WolfGrowth: 0.08, WolfDeath: 0.06, Predation: 0.01},
		Introduction: IntroductionConfig{Year: 5, Count: 10},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
