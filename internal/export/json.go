package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/ecosim/internal/population"
	"github.com/san-kum/ecosim/internal/sim"
)

type ExportData struct {
	Config  ConfigData              `json:"config"`
	Years   int                     `json:"years"`
	Records []population.YearRecord `json:"records"`
	Metrics map[string]float64      `json:"metrics,omitempty"`
}

type ConfigData struct {
	InitialRabbits        int     `json:"initial_rabbits"`
	InitialWolves         int     `json:"initial_wolves"`
	RabbitGrowthRate      float64 `json:"rabbit_growth"`
	WolfGrowthRate        float64 `json:"wolf_growth"`
	WolfDeathRate         float64 `json:"wolf_death"`
	PredationRate         float64 `json:"predation"`
	WolfIntroductionYear  int     `json:"intro_year"`
	WolfIntroductionCount int     `json:"intro_count"`
}

func newExportData(result *sim.Result) ExportData {
	c := result.Config
	return ExportData{
		Config: ConfigData{
			InitialRabbits:        c.InitialRabbits,
			InitialWolves:         c.InitialWolves,
			RabbitGrowthRate:      c.RabbitGrowthRate,
			WolfGrowthRate:        c.WolfGrowthRate,
			WolfDeathRate:         c.WolfDeathRate,
			PredationRate:         c.PredationRate,
			WolfIntroductionYear:  c.WolfIntroductionYear,
			WolfIntroductionCount: c.WolfIntroductionCount,
		},
		Years:   c.Years,
		Records: result.Records,
		Metrics: result.Metrics,
	}
}

// WriteJSON encodes the run, its config and metrics as indented JSON.
func WriteJSON(w io.Writer, result *sim.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newExportData(result))
}
