// Package bot implements the collaborator interface a room consults when a
// seat is bot-controlled, plus one reference heuristic strategy.
package bot

import (
	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/rules"
)

// Decision is a bot's chosen action on its turn: either a play (Cards
// non-empty) or a pass.
type Decision struct {
	Cards []deck.Card
	Pass  bool
}

// Strategy decides what a bot-controlled seat does when it is on the move.
// hand is the seat's current cards (already sorted descending); target is
// the trick's last play, or nil on a free lead. A nil target means any
// legal non-empty combination is acceptable.
type Strategy interface {
	Decide(hand []deck.Card, level deck.Rank, target *rules.Classification) Decision
}

// TributeStrategy decides which card a bot-controlled seat pays or returns
// as tribute. The default collaborator (internal/game) already hardcodes
// largest-paid/lowest-returned; this interface exists for a room wanting to
// delegate that choice to a pluggable bot instead.
type TributeStrategy interface {
	ChooseTribute(hand []deck.Card, level deck.Rank) deck.Card
	ChooseReturn(hand []deck.Card, level deck.Rank) deck.Card
}
