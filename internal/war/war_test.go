package war

import (
	"errors"
	"testing"
)

func TestNewDeck(t *testing.T) {
	d := NewDeck()
	if len(d) != DeckSize {
		t.Fatalf("deck has %d cards, want %d", len(d), DeckSize)
	}

	counts := make(map[int]int)
	for _, c := range d {
		counts[c]++
	}
	for r := 1; r <= MaxRank; r++ {
		if counts[r] != CopiesPerRank {
			t.Errorf("rank %d appears %d times, want %d", r, counts[r], CopiesPerRank)
		}
	}
}

func TestPlayMatch(t *testing.T) {
	g := NewGame(42)
	m := g.PlayMatch(1)

	if len(m.Rounds) != DeckSize {
		t.Fatalf("match has %d rounds, want %d", len(m.Rounds), DeckSize)
	}
	if total := m.Player1Rounds + m.Player2Rounds + m.TiedRounds; total != DeckSize {
		t.Errorf("round outcomes sum to %d, want %d", total, DeckSize)
	}

	for _, r := range m.Rounds {
		if r.Winner != compare(r.Card1, r.Card2) {
			t.Errorf("round %d: cards %d vs %d scored as %v", r.Number, r.Card1, r.Card2, r.Winner)
		}
	}

	if m.Winner != compare(m.Player1Rounds, m.Player2Rounds) {
		t.Errorf("match winner %v inconsistent with %d-%d", m.Winner, m.Player1Rounds, m.Player2Rounds)
	}
}

func TestShufflePreservesDeck(t *testing.T) {
	g := NewGame(7)
	for i := 0; i < 5; i++ {
		g.PlayMatch(i + 1)
	}
	sum := 0
	for _, c := range g.deck1 {
		sum += c
	}
	if want := CopiesPerRank * MaxRank * (MaxRank + 1) / 2; sum != want {
		t.Errorf("deck rank sum %d, want %d", sum, want)
	}
}

func TestPlayTournament(t *testing.T) {
	stats, err := NewGame(42).Play(DefaultMatches)
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}

	if len(stats.Matches) != DefaultMatches {
		t.Fatalf("played %d matches, want %d", len(stats.Matches), DefaultMatches)
	}
	if got := stats.Player1Wins + stats.Player2Wins + stats.TiedMatches; got != DefaultMatches {
		t.Errorf("wins and tied matches sum to %d, want %d", got, DefaultMatches)
	}

	tiedRounds := 0
	for _, m := range stats.Matches {
		tiedRounds += m.TiedRounds
	}
	if tiedRounds != stats.TiedRounds {
		t.Errorf("tied rounds %d, per-match sum %d", stats.TiedRounds, tiedRounds)
	}
	if stats.TotalTies() != stats.TiedRounds+stats.TiedMatches {
		t.Error("total ties should add rounds and matches")
	}

	pct := stats.Player1WinPercentage() + stats.Player2WinPercentage()
	if pct > 100 {
		t.Errorf("win percentages sum to %f", pct)
	}
}

func TestSeededDeterminism(t *testing.T) {
	a, _ := NewGame(99).Play(3)
	b, _ := NewGame(99).Play(3)

	for i := range a.Matches {
		for j := range a.Matches[i].Rounds {
			if a.Matches[i].Rounds[j] != b.Matches[i].Rounds[j] {
				t.Fatalf("match %d round %d differs between identical seeds", i+1, j+1)
			}
		}
	}
}

func TestPlayInvalidMatches(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := NewGame(1).Play(n)
		if !errors.Is(err, ErrInvalidMatches) {
			t.Errorf("Play(%d): expected ErrInvalidMatches, got %v", n, err)
		}
	}
}

func TestWinPercentage(t *testing.T) {
	s := &Stats{}
	for _, w := range []Outcome{Player1, Player1, Player2, Tie} {
		s.add(MatchResult{Winner: w})
	}

	if got := s.Player1WinPercentage(); got != 50 {
		t.Errorf("player 1 percentage = %v, want 50", got)
	}
	if got := s.Player2WinPercentage(); got != 25 {
		t.Errorf("player 2 percentage = %v, want 25", got)
	}
	if s.TiedMatches != 1 {
		t.Errorf("tied matches = %d, want 1", s.TiedMatches)
	}
	if (&Stats{}).Player1WinPercentage() != 0 {
		t.Error("empty stats should report 0%")
	}
}

func BenchmarkPlay(b *testing.B) {
	for i := 0; i < b.N; i++ {
		NewGame(int64(i + 1)).Play(DefaultMatches)
	}
}
