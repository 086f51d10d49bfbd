package rules

// Compare returns a spaceship-style comparison of two classified hands: a
// positive result means a beats b, negative means b beats a, and zero means
// neither beats the other (the caller must treat zero as "does not beat",
// per spec — it is not a statement of equality).
func Compare(a, b Classification) int {
	aBomb := a.Type.isBombFamily()
	bBomb := b.Type.isBombFamily()

	switch {
	case aBomb && bBomb:
		return compareLadder(a, b)
	case aBomb && !bBomb:
		return 1
	case !aBomb && bBomb:
		return -1
	default:
		return compareNonBomb(a, b)
	}
}

func compareLadder(a, b Classification) int {
	as, bs := a.ladderScore(), b.ladderScore()
	if as != bs {
		if as > bs {
			return 1
		}
		return -1
	}
	// Equal ladder rung (e.g. two bombs of the same size, or two
	// StraightFlushes): break the tie by value.
	return compareInts(a.Value, b.Value)
}

func compareNonBomb(a, b Classification) int {
	if a.Type != b.Type || len(a.Cards) != len(b.Cards) {
		return 0
	}
	return compareInts(a.Value, b.Value)
}

func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Beats reports whether a strictly beats b, per Compare's contract.
func Beats(a, b Classification) bool {
	return Compare(a, b) > 0
}
