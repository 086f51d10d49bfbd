package bot

import (
	"sort"

	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/rules"
)

// Heuristic is a reference Strategy: it plays the cheapest legal beat of
// the required shape it can assemble, falls back to the cheapest bomb if
// no matching shape beats the target, and otherwise passes. It never
// anticipates straights, tubes, plates or trips-with-pair against a
// target of that shape (it will reach for a bomb or pass instead) — those
// are the multi-rank shapes a stronger strategy would need look-ahead for.
type Heuristic struct{}

// Decide implements Strategy.
func (Heuristic) Decide(hand []deck.Card, level deck.Rank, target *rules.Classification) Decision {
	if target == nil {
		return Decision{Cards: leadPlay(hand, level)}
	}

	if cards, ok := cheapestSameShape(hand, level, *target); ok {
		return Decision{Cards: cards}
	}
	if cards, ok := cheapestBomb(hand, level, *target); ok {
		return Decision{Cards: cards}
	}
	return Decision{Pass: true}
}

// leadPlay opens a free trick with the single lowest card in hand.
func leadPlay(hand []deck.Card, level deck.Rank) []deck.Card {
	lowest := hand[0]
	for _, c := range hand[1:] {
		if c.LogicValue(level) < lowest.LogicValue(level) {
			lowest = c
		}
	}
	return []deck.Card{lowest}
}

// cheapestSameShape tries to assemble a same-length, same-family beat of
// target using rank groups (plus wilds to fill any shortfall), preferring
// the lowest-ranked group that still wins.
func cheapestSameShape(hand []deck.Card, level deck.Rank, target rules.Classification) ([]deck.Card, bool) {
	n := len(target.Cards)
	if n != 1 && n != 2 && n != 3 && n != 4 {
		return nil, false // Straight/Tube/Plate/TripsWithPair: left to a bomb or a pass.
	}

	byRank, wilds := groupByRank(hand, level)
	ranks := make([]deck.Rank, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	for _, r := range ranks {
		group := byRank[r]
		if len(group)+len(wilds) < n {
			continue
		}
		candidate := assemble(group, wilds, n)
		cls, err := rules.Classify(candidate, level)
		if err != nil {
			continue
		}
		if cls.Type == target.Type && rules.Beats(cls, target) {
			return candidate, true
		}
	}
	return nil, false
}

// cheapestBomb finds the weakest bomb-family combination in hand (a 4+ of
// a kind, or the four-joker "FourKings") that beats target.
func cheapestBomb(hand []deck.Card, level deck.Rank, target rules.Classification) ([]deck.Card, bool) {
	byRank, wilds := groupByRank(hand, level)
	ranks := make([]deck.Rank, 0, len(byRank))
	for r := range byRank {
		ranks = append(ranks, r)
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] < ranks[j] })

	var best []deck.Card
	var bestCls rules.Classification
	found := false

	for _, r := range ranks {
		group := byRank[r]
		for size := 4; size <= len(group)+len(wilds); size++ {
			candidate := assemble(group, wilds, size)
			cls, err := rules.Classify(candidate, level)
			if err != nil || cls.Type != rules.Bomb {
				continue
			}
			if !rules.Beats(cls, target) {
				continue
			}
			if !found || rules.Compare(bestCls, cls) > 0 {
				best, bestCls, found = candidate, cls, true
			}
		}
	}

	if fk, ok := fourKings(hand); ok {
		cls, err := rules.Classify(fk, level)
		if err == nil && rules.Beats(cls, target) {
			if !found || rules.Compare(bestCls, cls) > 0 {
				best, found = fk, true
			}
		}
	}

	return best, found
}

// groupByRank buckets hand by literal rank, holding the level's wild cards
// (the Hearts-suit level card) aside as flex cards usable in any group.
func groupByRank(hand []deck.Card, level deck.Rank) (map[deck.Rank][]deck.Card, []deck.Card) {
	byRank := map[deck.Rank][]deck.Card{}
	var wilds []deck.Card
	for _, c := range hand {
		if c.IsWild(level) {
			wilds = append(wilds, c)
			continue
		}
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	return byRank, wilds
}

// assemble takes up to n cards from group, then fills any shortfall from
// wilds.
func assemble(group, wilds []deck.Card, n int) []deck.Card {
	out := make([]deck.Card, 0, n)
	for _, c := range group {
		if len(out) == n {
			break
		}
		out = append(out, c)
	}
	for _, c := range wilds {
		if len(out) == n {
			break
		}
		out = append(out, c)
	}
	return out
}

// fourKings returns the four-joker combination (both small, both big) if
// hand holds it.
func fourKings(hand []deck.Card) ([]deck.Card, bool) {
	var small, big []deck.Card
	for _, c := range hand {
		switch c.Rank {
		case deck.SmallJoker:
			small = append(small, c)
		case deck.BigJoker:
			big = append(big, c)
		}
	}
	if len(small) >= 2 && len(big) >= 2 {
		return []deck.Card{small[0], small[1], big[0], big[1]}, true
	}
	return nil, false
}
