package main

import (
	"fmt"

	"github.com/san-kum/ecosim/internal/config"
	"github.com/san-kum/ecosim/internal/population"
	"github.com/spf13/cobra"
)

var (
	rabbits      int
	wolves       int
	rabbitGrowth float64
	wolfGrowth   float64
	wolfDeath    float64
	predation    float64
	introYear    int
	introCount   int
	years        int
	// Config file
	configFile string
	// Preset name
	preset string
)

func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&rabbits, "rabbits", population.DefaultRabbits, "initial rabbit count")
	f.IntVar(&wolves, "wolves", population.DefaultWolves, "initial wolf count")
	f.Float64Var(&rabbitGrowth, "rabbit-growth", population.DefaultRabbitGrowthRate, "yearly rabbit growth rate")
	f.Float64Var(&wolfGrowth, "wolf-growth", population.DefaultWolfGrowthRate, "yearly wolf growth rate")
	f.Float64Var(&wolfDeath, "wolf-death", population.DefaultWolfDeathRate, "yearly wolf death rate")
	f.Float64Var(&predation, "predation", population.DefaultPredationRate, "share of rabbits eaten while wolves are present")
	f.IntVar(&introYear, "intro-year", population.DefaultIntroductionYear, "year wolves are introduced")
	f.IntVar(&introCount, "intro-count", population.DefaultIntroductionSize, "wolves introduced")
	f.IntVar(&years, "years", population.DefaultYears, "years to simulate")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers defaults, preset, config file, environment and
// explicitly set flags, later sources winning.
func resolveConfig(cmd *cobra.Command) (population.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return population.Config{}, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownPreset, preset, config.ListPresets())
		}
	}

	if configFile != "" {
		if err := config.LoadInto(configFile, cfg); err != nil {
			return population.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return population.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("rabbits") {
		cfg.InitState.Rabbits = rabbits
	}
	if flags.Changed("wolves") {
		cfg.InitState.Wolves = wolves
	}
	if flags.Changed("rabbit-growth") {
		cfg.Rates.RabbitGrowth = rabbitGrowth
	}
	if flags.Changed("wolf-growth") {
		cfg.Rates.WolfGrowth = wolfGrowth
	}
	if flags.Changed("wolf-death") {
		cfg.Rates.WolfDeath = wolfDeath
	}
	if flags.Changed("predation") {
		cfg.Rates.Predation = predation
	}
	if flags.Changed("intro-year") {
		cfg.Introduction.Year = introYear
	}
	if flags.Changed("intro-count") {
		cfg.Introduction.Count = introCount
	}
	if flags.Changed("years") {
		cfg.Years = years
	}

	return cfg.Population(), nil
}
