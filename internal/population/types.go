package population

import (
	"fmt"
	"math"
	"sort"
)

const (
	DefaultRabbits          = 50
	DefaultWolves           = 0
	DefaultRabbitGrowthRate = 0.10
	DefaultWolfGrowthRate   = 0.08
	DefaultWolfDeathRate    = 0.06
	DefaultPredationRate    = 0.01
	DefaultIntroductionYear = 5
	DefaultIntroductionSize = 10
	DefaultYears            = 20
)

// Config is the full parameter set of one run. It is a value type; the
// stepper never mutates it.
type Config struct {
	InitialRabbits        int
	InitialWolves         int
	RabbitGrowthRate      float64
	WolfGrowthRate        float64
	WolfDeathRate         float64
	PredationRate         float64
	WolfIntroductionYear  int
	WolfIntroductionCount int
	Years                 int
}

func DefaultConfig() Config {
	return Config{
		InitialRabbits:        DefaultRabbits,
		InitialWolves:         DefaultWolves,
		RabbitGrowthRate:      DefaultRabbitGrowthRate,
		WolfGrowthRate:        DefaultWolfGrowthRate,
		WolfDeathRate:         DefaultWolfDeathRate,
		PredationRate:         DefaultPredationRate,
		WolfIntroductionYear:  DefaultIntroductionYear,
		WolfIntroductionCount: DefaultIntroductionSize,
		Years:                 DefaultYears,
	}
}

// Validate reports the first constraint the config breaks, as a
// *ParameterError wrapping ErrInvalidParameter.
func (c Config) Validate() error {
	counts := []struct {
		field string
		value int
	}{
		{"initial_rabbits", c.InitialRabbits},
		{"initial_wolves", c.InitialWolves},
		{"intro_count", c.WolfIntroductionCount},
	}
	for _, f := range counts {
		if f.value < 0 {
			return &ParameterError{Field: f.field, Value: float64(f.value), Reason: "must be non-negative"}
		}
	}

	rates := []struct {
		field string
		value float64
	}{
		{"rabbit_growth", c.RabbitGrowthRate},
		{"wolf_growth", c.WolfGrowthRate},
		{"wolf_death", c.WolfDeathRate},
		{"predation", c.PredationRate},
	}
	for _, f := range rates {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ParameterError{Field: f.field, Value: f.value, Reason: "must be finite"}
		}
		if f.value < 0 {
			return &ParameterError{Field: f.field, Value: f.value, Reason: "must be non-negative"}
		}
	}

	if c.WolfIntroductionYear <= 0 {
		return &ParameterError{Field: "intro_year", Value: float64(c.WolfIntroductionYear), Reason: "must be positive"}
	}
	if c.Years <= 0 {
		return &ParameterError{Field: "years", Value: float64(c.Years), Reason: "must be positive"}
	}
	return nil
}

// Params returns every tunable field keyed by its parameter name.
func (c Config) Params() map[string]float64 {
	return map[string]float64{
		"initial_rabbits": float64(c.InitialRabbits),
		"initial_wolves":  float64(c.InitialWolves),
		"rabbit_growth":   c.RabbitGrowthRate,
		"wolf_growth":     c.WolfGrowthRate,
		"wolf_death":      c.WolfDeathRate,
		"predation":       c.PredationRate,
		"intro_year":      float64(c.WolfIntroductionYear),
		"intro_count":     float64(c.WolfIntroductionCount),
		"years":           float64(c.Years),
	}
}

// ParamNames lists the names accepted by SetParam in sorted order.
func ParamNames() []string {
	params := DefaultConfig().Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetParam sets a field by name. Integer fields are truncated.
func (c *Config) SetParam(name string, value float64) error {
	switch name {
	case "initial_rabbits":
		c.InitialRabbits = int(value)
	case "initial_wolves":
		c.InitialWolves = int(value)
	case "rabbit_growth":
		c.RabbitGrowthRate = value
	case "wolf_growth":
		c.WolfGrowthRate = value
	case "wolf_death":
		c.WolfDeathRate = value
	case "predation":
		c.PredationRate = value
	case "intro_year":
		c.WolfIntroductionYear = int(value)
	case "intro_count":
		c.WolfIntroductionCount = int(value)
	case "years":
		c.Years = int(value)
	default:
		return fmt.Errorf("unknown parameter: %s", name)
	}
	return nil
}

type Species int

const (
	Rabbits Species = iota
	Wolves
)

func (s Species) String() string {
	switch s {
	case Rabbits:
		return "rabbits"
	case Wolves:
		return "wolves"
	default:
		return fmt.Sprintf("species(%d)", int(s))
	}
}

// YearRecord is the population at the end of one simulated year.
type YearRecord struct {
	Year    int `json:"year"`
	Rabbits int `json:"rabbits"`
	Wolves  int `json:"wolves"`
}

func (r YearRecord) Count(s Species) int {
	if s == Wolves {
		return r.Wolves
	}
	return r.Rabbits
}

// Result holds one record per year, year 0 first.
type Result struct {
	Records []YearRecord
}

func (r Result) Len() int { return len(r.Records) }

// Final returns the last record, or the zero record for an empty result.
func (r Result) Final() YearRecord {
	if len(r.Records) == 0 {
		return YearRecord{}
	}
	return r.Records[len(r.Records)-1]
}

// Series returns the counts of one species as float64, for plotting.
func (r Result) Series(s Species) []float64 {
	out := make([]float64, len(r.Records))
	for i, rec := range r.Records {
		out[i] = float64(rec.Count(s))
	}
	return out
}
