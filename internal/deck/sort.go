package deck

import "sort"

// SortDescending stably sorts cards by logic value (descending) with suit as
// the descending tie-break (Diamonds > Clubs > Hearts > Spades, jokers
// highest of all). It is idempotent: sorting an already-sorted hand returns
// the same order.
func SortDescending(cards []Card, level Rank) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := out[i].LogicValue(level), out[j].LogicValue(level)
		if vi != vj {
			return vi > vj
		}
		return out[i].Suit > out[j].Suit
	})
	return out
}
