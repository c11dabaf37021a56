package war

const (
	MaxRank        = 13
	CopiesPerRank  = 2
	DeckSize       = MaxRank * CopiesPerRank
	DefaultMatches = 10
)

// Deck is an ordered hand of card ranks.
type Deck []int

// NewDeck returns ranks 1..13 followed by 1..13 again.
func NewDeck() Deck {
	d := make(Deck, 0, DeckSize)
	for c := 0; c < CopiesPerRank; c++ {
		for r := 1; r <= MaxRank; r++ {
			d = append(d, r)
		}
	}
	return d
}

func (d Deck) Clone() Deck {
	c := make(Deck, len(d))
	copy(c, d)
	return c
}
