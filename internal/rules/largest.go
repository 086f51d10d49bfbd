package rules

import "github.com/lox/guandan/internal/deck"

// LargestCard returns the card with the strictly largest logic value in
// hand, which is always the head of deck.SortDescending(hand, level).
// Ties between identical-value copies resolve to whichever sorts first.
func LargestCard(hand []deck.Card, level deck.Rank) deck.Card {
	sorted := deck.SortDescending(hand, level)
	return sorted[0]
}
