package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/war"
)

func TestFormatRow(t *testing.T) {
	tests := []struct {
		rec  population.YearRecord
		want string
	}{
		{population.YearRecord{Year: 0, Rabbits: 50, Wolves: 0}, "   0 |      50 |      0"},
		{population.YearRecord{Year: 5, Rabbits: 78, Wolves: 9}, "   5 |      78 |      9"},
		{population.YearRecord{Year: 120, Rabbits: 1234567, Wolves: 4321}, " 120 | 1234567 |   4321"},
	}

	for _, tt := range tests {
		if got := FormatRow(tt.rec); got != tt.want {
			t.Errorf("FormatRow(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestWriteTable(t *testing.T) {
	cfg := population.DefaultConfig()
	cfg.Years = 3
	res, err := population.Simulate(cfg)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, res, Plain()); err != nil {
		t.Fatalf("write table: %v", err)
	}

	want := strings.Join([]string{
		"Year | Rabbits | Wolves",
		"-----|---------|-------",
		"   0 |      50 |      0",
		"   1 |      55 |      0",
		"   2 |      60 |      0",
		"   3 |      66 |      0",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("table mismatch:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteTableDoesNotChangeResult(t *testing.T) {
	res, _ := population.Simulate(population.DefaultConfig())
	before := append([]population.YearRecord(nil), res.Records...)

	var buf bytes.Buffer
	if err := WriteTable(&buf, res, Colored()); err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if before[i] != res.Records[i] {
			t.Fatalf("record %d changed by rendering", i)
		}
	}
}

func TestWriteMetricsSorted(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMetrics(&buf, map[string]float64{"b": 2, "a": 1}, Plain())
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Index(out, "a") > strings.Index(out, "b") {
		t.Errorf("metrics not sorted:\n%s", out)
	}
	if !strings.Contains(out, "1.0000") {
		t.Errorf("missing value in:\n%s", out)
	}
}

func TestPlot(t *testing.T) {
	res, _ := population.Simulate(population.DefaultConfig())

	if out := Plot(res, 40, 8); !strings.Contains(out, "rabbits") {
		t.Errorf("plot missing caption:\n%s", out)
	}
	if out := PlotSpecies(res, population.Wolves, 40, 8); !strings.Contains(out, "wolves by year") {
		t.Errorf("species plot missing caption:\n%s", out)
	}
	if Plot(population.Result{}, 40, 8) != "" {
		t.Error("expected empty plot for empty result")
	}
}

func TestWriteWar(t *testing.T) {
	stats, err := war.NewGame(3).Play(2)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteWar(&buf, stats, true, Plain()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{"=== Game 1 ===", "=== Game 2 ===", "Final Results:", "Total ties:", "Player 1 win percentage:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	roundLines := strings.Count(out, "wins round count") + strings.Count(out, "no one wins this round")
	if roundLines != 2*war.DeckSize {
		t.Errorf("expected %d round lines, got %d", 2*war.DeckSize, roundLines)
	}
}

func TestWriteWarSummary(t *testing.T) {
	stats, _ := war.NewGame(3).Play(1)

	var buf bytes.Buffer
	if err := WriteWar(&buf, stats, false, Plain()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "wins round count") {
		t.Error("summary output should not list rounds")
	}
}
