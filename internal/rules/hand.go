// Package rules implements Guandan hand classification and comparison: the
// legality and ordering logic a deal engine consults on every play.
package rules

import "github.com/lox/guandan/internal/deck"

// HandType identifies a recognized play shape.
type HandType int

const (
	Single HandType = iota
	Pair
	Trips
	TripsWithPair
	Straight
	Tube
	Plate
	Bomb
	StraightFlush
	FourKings
)

// String names a hand type for logs and error messages.
func (t HandType) String() string {
	switch t {
	case Single:
		return "Single"
	case Pair:
		return "Pair"
	case Trips:
		return "Trips"
	case TripsWithPair:
		return "TripsWithPair"
	case Straight:
		return "Straight"
	case Tube:
		return "Tube"
	case Plate:
		return "Plate"
	case Bomb:
		return "Bomb"
	case StraightFlush:
		return "StraightFlush"
	case FourKings:
		return "FourKings"
	default:
		return "Unknown"
	}
}

// isBombFamily reports whether a hand type belongs to the bomb ladder, which
// beats any non-bomb hand regardless of type or card count.
func (t HandType) isBombFamily() bool {
	switch t {
	case Bomb, StraightFlush, FourKings:
		return true
	default:
		return false
	}
}

// Classification is the result of successfully classifying a candidate play.
type Classification struct {
	Type HandType
	// Cards is the candidate multiset that was classified, unchanged.
	Cards []deck.Card
	// Value is the logic value of the defining rank (level card = 19,
	// SmallJoker = 20, BigJoker = 21).
	Value int
	// BombCount is the number of cards composing a Bomb, or 5 for a
	// StraightFlush (ladder-scored as 5.5 against true bombs), or 0 for
	// any non-bomb-family type.
	BombCount int
}

// ladderScore returns a bomb-family classification's position on the bomb
// ladder: FourKings tops it, then bomb count (StraightFlush scored as
// halfway between a 5-bomb and a 6-bomb, per spec), then plain bomb size.
func (c Classification) ladderScore() float64 {
	switch c.Type {
	case FourKings:
		return 1000
	case StraightFlush:
		return 5.5
	case Bomb:
		return float64(c.BombCount)
	default:
		return 0
	}
}
