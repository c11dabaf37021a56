package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envOverrides holds optional per-field overrides. Unset variables leave
// the pointer nil.
type envOverrides struct {
	Years        *int     `env:"ECOSIM_YEARS"`
	Rabbits      *int     `env:"ECOSIM_RABBITS"`
	Wolves       *int     `env:"ECOSIM_WOLVES"`
	RabbitGrowth *float64 `env:"ECOSIM_RABBIT_GROWTH"`
	WolfGrowth   *float64 `env:"ECOSIM_WOLF_GROWTH"`
	WolfDeath    *float64 `env:"ECOSIM_WOLF_DEATH"`
	Predation    *float64 `env:"ECOSIM_PREDATION"`
	IntroYear    *int     `env:"ECOSIM_INTRO_YEAR"`
	IntroCount   *int     `env:"ECOSIM_INTRO_COUNT"`
}

// Settings are process-wide options that are not part of a run.
type Settings struct {
	LogLevel string `env:"ECOSIM_LOG_LEVEL" envDefault:"info"`
	Seed     int64  `env:"ECOSIM_SEED"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func LoadSettings() (Settings, error) {
	var s Settings
	err := ParseEnv(&s)
	return s, err
}

// ApplyEnv overwrites cfg fields for every ECOSIM_* variable that is set.
func ApplyEnv(cfg *Config) error {
	var o envOverrides
	if err := ParseEnv(&o); err != nil {
		return err
	}
	setInt(&cfg.Years, o.Years)
	setInt(&cfg.InitState.Rabbits, o.Rabbits)
	setInt(&cfg.InitState.Wolves, o.Wolves)
	setFloat(&cfg.Rates.RabbitGrowth, o.RabbitGrowth)
	setFloat(&cfg.Rates.WolfGrowth, o.WolfGrowth)
	setFloat(&cfg.Rates.WolfDeath, o.WolfDeath)
	setFloat(&cfg.Rates.Predation, o.Predation)
	setInt(&cfg.Introduction.Year, o.IntroYear)
	setInt(&cfg.Introduction.Count, o.IntroCount)
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
