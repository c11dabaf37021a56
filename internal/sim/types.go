package sim

import "github.com/san-kum/ecosim/internal/population"

// Metric summarises a run one year at a time.
type Metric interface {
	Name() string
	Observe(rec population.YearRecord)
	Value() float64
	Reset()
}

// Observer sees every year of a run in order.
type Observer interface {
	OnYear(rec population.YearRecord)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(rec population.YearRecord)

func (f ObserverFunc) OnYear(rec population.YearRecord) { f(rec) }

type Result struct {
	population.Result
	Config  population.Config
	Metrics map[string]float64
}
