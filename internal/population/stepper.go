package population

import "math"

const maxCount = float64(math.MaxInt)

// Simulate validates cfg and steps it from year 1 through cfg.Years.
// On a validation failure no result is produced.
func Simulate(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	records := make([]YearRecord, 0, cfg.Years+1)
	rec := YearRecord{Year: 0, Rabbits: cfg.InitialRabbits, Wolves: cfg.InitialWolves}
	records = append(records, rec)

	for year := 1; year <= cfg.Years; year++ {
		rec = Step(cfg, rec, year)
		records = append(records, rec)
	}
	return Result{Records: records}, nil
}

// Step advances prev by one year. Order matters: rabbit growth, wolf
// update, predation against the updated wolf count, then truncation and
// clamping of both populations.
func Step(cfg Config, prev YearRecord, year int) YearRecord {
	rabbits := float64(prev.Rabbits)
	wolves := float64(prev.Wolves)

	rabbits *= 1 + cfg.RabbitGrowthRate

	if year == cfg.WolfIntroductionYear {
		wolves = float64(cfg.WolfIntroductionCount)
		wolves *= 1 - cfg.WolfDeathRate
	} else if wolves > 0 {
		wolves *= 1 + cfg.WolfGrowthRate - cfg.WolfDeathRate
	}

	if wolves > 0 {
		rabbits *= 1 - cfg.PredationRate
	}

	return YearRecord{
		Year:    year,
		Rabbits: toCount(rabbits),
		Wolves:  toCount(wolves),
	}
}

// toCount truncates toward zero and clamps into [0, MaxInt].
func toCount(v float64) int {
	v = math.Trunc(v)
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= maxCount:
		return math.MaxInt
	}
	return int(v)
}
