package war

import (
	"fmt"
	"math/rand"
	"time"
)

type Outcome int

const (
	Tie Outcome = iota
	Player1
	Player2
)

func (o Outcome) String() string {
	switch o {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	case Tie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

func compare(a, b int) Outcome {
	switch {
	case a > b:
		return Player1
	case a < b:
		return Player2
	default:
		return Tie
	}
}

type Round struct {
	Number int
	Card1  int
	Card2  int
	Winner Outcome
}

type MatchResult struct {
	Number        int
	Rounds        []Round
	Player1Rounds int
	Player2Rounds int
	TiedRounds    int
	Winner        Outcome
}

// Game owns the RNG and the two decks. It is not safe for concurrent use.
type Game struct {
	rng   *rand.Rand
	deck1 Deck
	deck2 Deck
}

// NewGame seeds the shuffler. Seed 0 picks a time-based seed.
func NewGame(seed int64) *Game {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		rng:   rand.New(rand.NewSource(seed)),
		deck1: NewDeck(),
		deck2: NewDeck(),
	}
}

func (g *Game) shuffle(d Deck) {
	g.rng.Shuffle(len(d), func(i, j int) { d[i], d[j] = d[j], d[i] })
}

// PlayMatch shuffles both decks and plays one round per card.
func (g *Game) PlayMatch(number int) MatchResult {
	g.shuffle(g.deck1)
	g.shuffle(g.deck2)

	m := MatchResult{Number: number, Rounds: make([]Round, 0, DeckSize)}
	for i := 0; i < DeckSize; i++ {
		r := Round{Number: i + 1, Card1: g.deck1[i], Card2: g.deck2[i]}
		r.Winner = compare(r.Card1, r.Card2)
		switch r.Winner {
		case Player1:
			m.Player1Rounds++
		case Player2:
			m.Player2Rounds++
		default:
			m.TiedRounds++
		}
		m.Rounds = append(m.Rounds, r)
	}
	m.Winner = compare(m.Player1Rounds, m.Player2Rounds)
	return m
}

// Play runs a tournament of the given number of matches.
func (g *Game) Play(matches int) (*Stats, error) {
	if matches <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMatches, matches)
	}

	stats := &Stats{Matches: make([]MatchResult, 0, matches)}
	for n := 1; n <= matches; n++ {
		stats.add(g.PlayMatch(n))
	}
	return stats, nil
}
