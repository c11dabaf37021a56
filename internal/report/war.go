package report

import (
	"fmt"
	"io"

	"github.com/san-kum/ecosim/internal/war"
)

// WriteWar prints a tournament. With verbose set every round is listed
// with the running round count of its winner.
func WriteWar(w io.Writer, stats *war.Stats, verbose bool, st Styles) error {
	p := &printer{w: w}

	for _, m := range stats.Matches {
		p.printf("\n%s\n", st.Header.Render(fmt.Sprintf("=== Game %d ===", m.Number)))

		if verbose {
			p1, p2 := 0, 0
			for _, r := range m.Rounds {
				switch r.Winner {
				case war.Player1:
					p1++
					p.printf("Player 1 wins round count: %d\n", p1)
				case war.Player2:
					p2++
					p.printf("Player 2 wins round count: %d\n", p2)
				default:
					p.printf("Tie - no one wins this round\n")
				}
			}
		} else {
			p.printf("rounds %d-%d, %d tied\n", m.Player1Rounds, m.Player2Rounds, m.TiedRounds)
		}

		switch m.Winner {
		case war.Player1:
			p.printf("%s\n", st.Winner.Render("Player 1 wins game!"))
		case war.Player2:
			p.printf("%s\n", st.Winner.Render("Player 2 wins game!"))
		default:
			p.printf("%s\n", st.Winner.Render("Game is a tie!"))
		}
	}

	p.printf("\n%s\n", st.Header.Render("Final Results:"))
	p.printf("%s %d\n", st.Label.Render("Player 1 total wins:"), stats.Player1Wins)
	p.printf("%s %d\n", st.Label.Render("Player 2 total wins:"), stats.Player2Wins)
	p.printf("%s %d\n", st.Label.Render("Total ties:"), stats.TotalTies())
	p.printf("%s %.1f%%\n", st.Label.Render("Player 1 win percentage:"), stats.Player1WinPercentage())
	p.printf("%s %.1f%%\n", st.Label.Render("Player 2 win percentage:"), stats.Player2WinPercentage())
	return p.err
}

// printer remembers the first write error so callers check it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
