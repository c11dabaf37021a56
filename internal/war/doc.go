// Package war plays a simplified game of War between two players.
//
// Each player holds the ranks 1..13 twice. A match shuffles both decks and
// compares them card by card for 26 rounds; the player who takes more
// rounds wins the match. A tournament plays several matches and keeps
// totals. Nothing here prints: callers render [Stats] however they like.
package war
