package report

import (
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ecosim/internal/population"
)

// Plot draws both species on one chart, rabbits in green and wolves in red.
func Plot(res population.Result, width, height int) string {
	if res.Len() < 2 {
		return ""
	}
	return asciigraph.PlotMany(
		[][]float64{res.Series(population.Rabbits), res.Series(population.Wolves)},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Red),
		asciigraph.Caption("rabbits (green) / wolves (red) by year"),
	)
}

// PlotSpecies draws a single species.
func PlotSpecies(res population.Result, s population.Species, width, height int) string {
	if res.Len() < 2 {
		return ""
	}
	return asciigraph.Plot(res.Series(s),
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(s.String()+" by year"),
	)
}
