package war

// Stats accumulates tournament totals.
type Stats struct {
	Matches     []MatchResult
	Player1Wins int
	Player2Wins int
	TiedRounds  int
	TiedMatches int
}

func (s *Stats) add(m MatchResult) {
	s.Matches = append(s.Matches, m)
	s.TiedRounds += m.TiedRounds
	switch m.Winner {
	case Player1:
		s.Player1Wins++
	case Player2:
		s.Player2Wins++
	default:
		s.TiedMatches++
	}
}

// TotalTies counts tied rounds and tied matches together.
func (s *Stats) TotalTies() int {
	return s.TiedRounds + s.TiedMatches
}

func (s *Stats) Player1WinPercentage() float64 {
	return s.percentage(s.Player1Wins)
}

func (s *Stats) Player2WinPercentage() float64 {
	return s.percentage(s.Player2Wins)
}

func (s *Stats) percentage(wins int) float64 {
	if len(s.Matches) == 0 {
		return 0
	}
	return float64(wins) / float64(len(s.Matches)) * 100
}
