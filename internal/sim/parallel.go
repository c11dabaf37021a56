package sim

import (
	"context"
	"sync"

	"github.com/san-kum/ecosim/internal/population"
)

// Ensemble runs independent configurations in parallel. Each run gets a
// fresh set of metrics from newMetrics since metrics are stateful.
type Ensemble struct {
	newMetrics func() []Metric
}

func NewEnsemble(newMetrics func() []Metric) *Ensemble {
	return &Ensemble{newMetrics: newMetrics}
}

// Run returns results in the same order as cfgs. The first failing
// config, by index, determines the returned error.
func (e *Ensemble) Run(ctx context.Context, cfgs []population.Config) ([]*Result, error) {
	results := make([]*Result, len(cfgs))
	errs := make([]error, len(cfgs))

	var wg sync.WaitGroup
	for i := range cfgs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			s := New()
			if e.newMetrics != nil {
				for _, m := range e.newMetrics() {
					s.AddMetric(m)
				}
			}

			results[idx], errs[idx] = s.Run(ctx, cfgs[idx])
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
