package metrics

import (
	"github.com/san-kum/ecosim/internal/population"
)

// Peak tracks the largest count a species reaches.
type Peak struct {
	species population.Species
	max     int
	seen    bool
}

func NewPeak(s population.Species) *Peak {
	return &Peak{species: s}
}

func (p *Peak) Name() string {
	return "peak_" + p.species.String()
}

func (p *Peak) Observe(rec population.YearRecord) {
	n := rec.Count(p.species)
	if !p.seen || n > p.max {
		p.max = n
		p.seen = true
	}
}

func (p *Peak) Value() float64 {
	return float64(p.max)
}

func (p *Peak) Reset() {
	p.max = 0
	p.seen = false
}

// Final records the last observed count of a species.
type Final struct {
	species population.Species
	last    int
}

func NewFinal(s population.Species) *Final {
	return &Final{species: s}
}

func (f *Final) Name() string                      { return "final_" + f.species.String() }
func (f *Final) Observe(rec population.YearRecord) { f.last = rec.Count(f.species) }
func (f *Final) Value() float64                    { return float64(f.last) }
func (f *Final) Reset()                            { f.last = 0 }
