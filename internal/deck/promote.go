package deck

// PromotedCard pairs a card with the level-derived flags a deal's hand
// state needs for display and classification. It is produced purely
// functionally from a Card and a level so repeated promotion is idempotent.
type PromotedCard struct {
	Card
	IsLevelCard bool
	IsWild      bool
	// Value is the card's LogicValue(level), cached alongside the flags.
	Value int
}

// PromoteForLevel annotates each card with isLevelCard/isWild/Value for the
// given level. It is purely functional: calling it again on its own output
// (by re-promoting the embedded Card) yields the same result.
func PromoteForLevel(cards []Card, level Rank) []PromotedCard {
	out := make([]PromotedCard, len(cards))
	for i, c := range cards {
		out[i] = PromotedCard{
			Card:        c,
			IsLevelCard: c.IsLevelCard(level),
			IsWild:      c.IsWild(level),
			Value:       c.LogicValue(level),
		}
	}
	return out
}
