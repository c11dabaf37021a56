package sim

import (
	"context"

	"github.com/san-kum/ecosim/internal/population"
)

type Simulator struct {
	metrics   []Metric
	observers []Observer
}

func New() *Simulator {
	return &Simulator{
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Run steps cfg to completion and replays each year through the attached
// metrics and observers. A cancelled context is checked before the run
// starts and between years of the replay; either way no result is returned.
func (s *Simulator) Run(ctx context.Context, cfg population.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := population.Simulate(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Result:  res,
		Config:  cfg,
		Metrics: make(map[string]float64, len(s.metrics)),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for _, rec := range res.Records {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for _, m := range s.metrics {
			m.Observe(rec)
		}
		for _, obs := range s.observers {
			obs.OnYear(rec)
		}
	}

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
