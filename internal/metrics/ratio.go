package metrics

import (
	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/sim"
)

// PredatorPreyRatio is the mean wolves/rabbits ratio over the years in
// which rabbits exist.
type PredatorPreyRatio struct {
	sum     float64
	samples int
}

func NewPredatorPreyRatio() *PredatorPreyRatio {
	return &PredatorPreyRatio{}
}

func (r *PredatorPreyRatio) Name() string {
	return "predator_prey_ratio"
}

func (r *PredatorPreyRatio) Observe(rec population.YearRecord) {
	if rec.Rabbits == 0 {
		return
	}
	r.sum += float64(rec.Wolves) / float64(rec.Rabbits)
	r.samples++
}

func (r *PredatorPreyRatio) Value() float64 {
	if r.samples == 0 {
		return 0
	}
	return r.sum / float64(r.samples)
}

func (r *PredatorPreyRatio) Reset() {
	r.sum = 0
	r.samples = 0
}

// Defaults is the metric set attached to every CLI run.
func Defaults() []sim.Metric {
	return []sim.Metric{
		NewPeak(population.Rabbits),
		NewPeak(population.Wolves),
		NewFinal(population.Rabbits),
		NewFinal(population.Wolves),
		NewExtinction(population.Rabbits),
		NewExtinction(population.Wolves),
		NewPredatorPreyRatio(),
	}
}
