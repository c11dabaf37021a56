package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/sim"
)

func records(pairs ...[2]int) []population.YearRecord {
	out := make([]population.YearRecord, len(pairs))
	for i, p := range pairs {
		out[i] = population.YearRecord{Year: i, Rabbits: p[0], Wolves: p[1]}
	}
	return out
}

func observe(m sim.Metric, recs []population.YearRecord) float64 {
	m.Reset()
	for _, r := range recs {
		m.Observe(r)
	}
	return m.Value()
}

func TestPeak(t *testing.T) {
	recs := records([2]int{10, 0}, [2]int{30, 2}, [2]int{20, 5})

	if got := observe(NewPeak(population.Rabbits), recs); got != 30 {
		t.Errorf("peak rabbits = %v, want 30", got)
	}
	if got := observe(NewPeak(population.Wolves), recs); got != 5 {
		t.Errorf("peak wolves = %v, want 5", got)
	}
}

func TestFinal(t *testing.T) {
	recs := records([2]int{10, 0}, [2]int{8, 3})
	m := NewFinal(population.Wolves)
	if got := observe(m, recs); got != 3 {
		t.Errorf("final wolves = %v, want 3", got)
	}
	if m.Name() != "final_wolves" {
		t.Errorf("unexpected name %q", m.Name())
	}
}

func TestExtinction(t *testing.T) {
	tests := []struct {
		name string
		recs []population.YearRecord
		want float64
	}{
		{"never present", records([2]int{1, 0}, [2]int{1, 0}), -1},
		{"survives", records([2]int{1, 0}, [2]int{1, 4}, [2]int{1, 4}), -1},
		{"dies out", records([2]int{1, 0}, [2]int{1, 4}, [2]int{1, 0}, [2]int{1, 0}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := observe(NewExtinction(population.Wolves), tt.recs); got != tt.want {
				t.Errorf("extinction = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredatorPreyRatio(t *testing.T) {
	recs := records([2]int{0, 3}, [2]int{10, 1}, [2]int{10, 3})
	got := observe(NewPredatorPreyRatio(), recs)
	if math.Abs(got-0.2) > 1e-12 {
		t.Errorf("ratio = %v, want 0.2", got)
	}

	if got := observe(NewPredatorPreyRatio(), nil); got != 0 {
		t.Errorf("empty ratio = %v, want 0", got)
	}
}

func TestDefaultsOnDefaultRun(t *testing.T) {
	s := sim.New()
	for _, m := range Defaults() {
		s.AddMetric(m)
	}

	res, err := s.Run(context.Background(), population.DefaultConfig())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	want := map[string]float64{
		"peak_rabbits":    266,
		"peak_wolves":     9,
		"final_rabbits":   266,
		"final_wolves":    9,
		"extinct_rabbits": -1,
		"extinct_wolves":  -1,
	}
	for name, v := range want {
		if got := res.Metrics[name]; got != v {
			t.Errorf("%s = %v, want %v", name, got, v)
		}
	}
	if _, ok := res.Metrics["predator_prey_ratio"]; !ok {
		t.Error("missing predator_prey_ratio")
	}
}
