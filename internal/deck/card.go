// Package deck implements the two-deck 108-card stack used by a Guandan
// deal: card identity, level-card/wild promotion, shuffling and dealing.
package deck

import "fmt"

// Suit identifies one of the four standard suits, or the joker "suit".
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
	JokerSuit
)

// String returns the glyph for a suit.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case JokerSuit:
		return "J"
	default:
		return "?"
	}
}

// IsRed reports whether the suit is drawn red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank identifies a card's face value. SmallJoker and BigJoker stand outside
// the normal 2..Ace run.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	SmallJoker
	BigJoker
)

// String returns the short label for a rank.
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	case SmallJoker:
		return "sJ"
	case BigJoker:
		return "BJ"
	default:
		return "?"
	}
}

// baseLogicValue is a rank's comparison value independent of any deal's
// current level. Level-card promotion to 19 is applied in Card.LogicValue.
func (r Rank) baseLogicValue() int {
	switch r {
	case SmallJoker:
		return 20
	case BigJoker:
		return 21
	default:
		return int(r)
	}
}

// ID is a stable identity tag, unique across all 108 cards in a deal's
// stack. It survives shuffling and dealing unchanged and is the sole key by
// which a play is validated against a hand.
type ID string

// Card is one physical card out of the 108-card stack.
type Card struct {
	Suit Suit
	Rank Rank
	// Copy distinguishes the two otherwise-identical copies of a card in
	// the two-deck stack (0 or 1).
	Copy int
	// ID is this card's unique identity tag, "suit-rank-copy".
	ID ID
}

// NewCard builds a card and derives its identity tag.
func NewCard(suit Suit, rank Rank, copy int) Card {
	return Card{
		Suit: suit,
		Rank: rank,
		Copy: copy,
		ID:   ID(fmt.Sprintf("%d-%d-%d", suit, rank, copy)),
	}
}

// String renders a card for logs and debug output.
func (c Card) String() string {
	if c.Rank == SmallJoker || c.Rank == BigJoker {
		return c.Rank.String()
	}
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsJoker reports whether the card is either joker.
func (c Card) IsJoker() bool {
	return c.Rank == SmallJoker || c.Rank == BigJoker
}

// LogicValue returns the card's comparison value given the deal's current
// level: standard ranks score 2..14, the level rank scores 19 regardless of
// suit, SmallJoker scores 20 and BigJoker scores 21.
func (c Card) LogicValue(level Rank) int {
	if c.IsJoker() {
		return c.Rank.baseLogicValue()
	}
	if c.Rank == level {
		return 19
	}
	return c.Rank.baseLogicValue()
}

// IsLevelCard reports whether this card's rank equals the active team's
// current level.
func (c Card) IsLevelCard(level Rank) bool {
	return !c.IsJoker() && c.Rank == level
}

// IsWild reports whether this card is the wild card for the given level: the
// level card of the Hearts suit.
func (c Card) IsWild(level Rank) bool {
	return c.Suit == Hearts && c.IsLevelCard(level)
}
