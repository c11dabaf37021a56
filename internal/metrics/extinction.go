package metrics

import (
	"github.com/san-kum/ecosim/internal/population"
)

// Extinction reports the first year a species drops to zero after having
// been present, or -1 if that never happens. A species that is absent
// from the start (wolves before introduction) is not extinct.
type Extinction struct {
	species population.Species
	present bool
	year    int
}

func NewExtinction(s population.Species) *Extinction {
	return &Extinction{species: s, year: -1}
}

func (e *Extinction) Name() string {
	return "extinct_" + e.species.String()
}

func (e *Extinction) Observe(rec population.YearRecord) {
	if e.year >= 0 {
		return
	}
	n := rec.Count(e.species)
	if n > 0 {
		e.present = true
		return
	}
	if e.present {
		e.year = rec.Year
	}
}

func (e *Extinction) Value() float64 {
	return float64(e.year)
}

func (e *Extinction) Reset() {
	e.present = false
	e.year = -1
}
