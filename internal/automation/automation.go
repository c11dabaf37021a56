package automation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/san-kum/ecosim/internal/config"
	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/sim"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSweep = errors.New("automation: invalid sweep")

// Scenario defines a batch of named runs.
type Scenario struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Runs        []ScenarioRun `yaml:"runs"`
}

// ScenarioRun starts from a preset (or the defaults) and applies params
// on top. Params use the same layout as a config file, so only the keys
// present override the base.
type ScenarioRun struct {
	Name   string    `yaml:"name"`
	Preset string    `yaml:"preset"`
	Params yaml.Node `yaml:"params"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Runs) == 0 {
		return nil, fmt.Errorf("scenario %q has no runs", scenario.Name)
	}
	return &scenario, nil
}

// Config resolves the run's base preset and overrides.
func (r *ScenarioRun) Config() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if r.Preset != "" {
		cfg = config.GetPreset(r.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: %s", config.ErrUnknownPreset, r.Preset)
		}
	}
	if !r.Params.IsZero() {
		if err := r.Params.Decode(cfg); err != nil {
			return nil, fmt.Errorf("params: %w", err)
		}
	}
	return cfg, nil
}

type ScenarioResult struct {
	Name   string
	Result *sim.Result
}

// RunScenario executes all runs in a scenario, in order.
func RunScenario(ctx context.Context, logger *log.Logger, scenario *Scenario, newMetrics func() []sim.Metric) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, 0, len(scenario.Runs))

	for i, run := range scenario.Runs {
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("run-%d", i+1)
		}
		logger.Info("running scenario step", "step", i+1, "of", len(scenario.Runs), "name", name)

		cfg, err := run.Config()
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, name, err)
		}

		s := sim.New()
		if newMetrics != nil {
			for _, m := range newMetrics() {
				s.AddMetric(m)
			}
		}

		result, err := s.Run(ctx, cfg.Population())
		if err != nil {
			return results, fmt.Errorf("step %d (%s): %w", i+1, name, err)
		}

		results = append(results, ScenarioResult{Name: name, Result: result})
	}

	return results, nil
}

// ParameterSweep runs the base config across evenly spaced values of one
// parameter.
type ParameterSweep struct {
	Base      population.Config
	ParamName string
	ParamMin  float64
	ParamMax  float64
	NumSteps  int
}

// SweepResult holds results from a parameter sweep
type SweepResult struct {
	ParamValue float64
	Final      population.YearRecord
	Metrics    map[string]float64
}

// Values returns the swept parameter values, min and max inclusive.
func (s *ParameterSweep) Values() ([]float64, error) {
	if s.NumSteps < 1 {
		return nil, fmt.Errorf("%w: steps must be at least 1, got %d", ErrInvalidSweep, s.NumSteps)
	}
	if s.ParamMax < s.ParamMin {
		return nil, fmt.Errorf("%w: max %v below min %v", ErrInvalidSweep, s.ParamMax, s.ParamMin)
	}
	if s.NumSteps == 1 {
		return []float64{s.ParamMin}, nil
	}

	paramStep := (s.ParamMax - s.ParamMin) / float64(s.NumSteps-1)
	values := make([]float64, s.NumSteps)
	for i := range values {
		values[i] = s.ParamMin + float64(i)*paramStep
	}
	values[len(values)-1] = s.ParamMax
	return values, nil
}

// RunSweep executes a parameter sweep. The runs are independent and go
// through a sim.Ensemble in parallel; results keep the sweep order.
func RunSweep(ctx context.Context, logger *log.Logger, sweep *ParameterSweep, newMetrics func() []sim.Metric) ([]SweepResult, error) {
	values, err := sweep.Values()
	if err != nil {
		return nil, err
	}

	cfgs := make([]population.Config, len(values))
	for i, v := range values {
		cfg := sweep.Base
		if err := cfg.SetParam(sweep.ParamName, v); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSweep, err)
		}
		cfgs[i] = cfg
	}

	logger.Info("starting sweep", "param", sweep.ParamName, "min", sweep.ParamMin, "max", sweep.ParamMax, "steps", len(values))

	runs, err := sim.NewEnsemble(newMetrics).Run(ctx, cfgs)
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(runs))
	for i, r := range runs {
		results[i] = SweepResult{
			ParamValue: values[i],
			Final:      r.Final(),
			Metrics:    r.Metrics,
		}
		logger.Debug("sweep point", "param", sweep.ParamName, "value", values[i], "rabbits", r.Final().Rabbits, "wolves", r.Final().Wolves)
	}

	return results, nil
}
