package config

import (
	"fmt"
	"os"

	"github.com/san-kum/ecosim/internal/population"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk form of a population run.
type Config struct {
	Years        int                `yaml:"years"`
	InitState    InitStateConfig    `yaml:"init_state"`
	Rates        RatesConfig        `yaml:"rates"`
	Introduction IntroductionConfig `yaml:"introduction"`
}

type InitStateConfig struct {
	Rabbits int `yaml:"rabbits"`
	Wolves  int `yaml:"wolves"`
}

type RatesConfig struct {
	RabbitGrowth float64 `yaml:"rabbit_growth"`
	WolfGrowth   float64 `yaml:"wolf_growth"`
	WolfDeath    float64 `yaml:"wolf_death"`
	Predation    float64 `yaml:"predation"`
}

type IntroductionConfig struct {
	Year  int `yaml:"year"`
	Count int `yaml:"count"`
}

func DefaultConfig() *Config {
	return FromPopulation(population.DefaultConfig())
}

func FromPopulation(p population.Config) *Config {
	return &Config{
		Years: p.Years,
		InitState: InitStateConfig{
			Rabbits: p.InitialRabbits,
			Wolves:  p.InitialWolves,
		},
		Rates: RatesConfig{
			RabbitGrowth: p.RabbitGrowthRate,
			WolfGrowth:   p.WolfGrowthRate,
			WolfDeath:    p.WolfDeathRate,
			Predation:    p.PredationRate,
		},
		Introduction: IntroductionConfig{
			Year:  p.WolfIntroductionYear,
			Count: p.WolfIntroductionCount,
		},
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg, leaving omitted keys untouched.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Population() population.Config {
	return population.Config{
		InitialRabbits:        c.InitState.Rabbits,
		InitialWolves:         c.InitState.Wolves,
		RabbitGrowthRate:      c.Rates.RabbitGrowth,
		WolfGrowthRate:        c.Rates.WolfGrowth,
		WolfDeathRate:         c.Rates.WolfDeath,
		PredationRate:         c.Rates.Predation,
		WolfIntroductionYear:  c.Introduction.Year,
		WolfIntroductionCount: c.Introduction.Count,
		Years:                 c.Years,
	}
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
