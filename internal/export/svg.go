package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ecosim/internal/population"
)

const (
	rabbitStroke = "#00ff88"
	wolfStroke   = "#ff4444"
)

// TimelineSVG draws both populations against the year axis. Each series
// is scaled to its own maximum so a small wolf pack stays visible next to
// a large warren.
func TimelineSVG(res population.Result, width, height int) string {
	if res.Len() < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, s := range []struct {
		species population.Species
		stroke  string
	}{
		{population.Rabbits, rabbitStroke},
		{population.Wolves, wolfStroke},
	} {
		sb.WriteString(seriesPath(res.Series(s.species), width, height, s.stroke, s.species.String()))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func seriesPath(data []float64, width, height int, stroke, id string) string {
	maxV := 0.0
	for _, v := range data {
		if v > maxV {
			maxV = v
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	pad := float64(height) * 0.1
	usable := float64(height) - 2*pad
	stepX := float64(width) / float64(len(data)-1)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<path id="%s" fill="none" stroke="%s" stroke-width="1.5" d="M`, id, stroke))
	for i, v := range data {
		x := float64(i) * stepX
		y := float64(height) - pad - v/maxV*usable
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")
	return sb.String()
}

// PhaseSVG traces wolves against rabbits, one point per year.
func PhaseSVG(res population.Result, width, height int, strokeColor string) string {
	if res.Len() < 2 {
		return ""
	}

	points := make([]struct{ X, Y float64 }, res.Len())
	for i, rec := range res.Records {
		points[i].X = float64(rec.Rabbits)
		points[i].Y = float64(rec.Wolves)
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
