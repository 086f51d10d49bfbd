package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/rules"
)

var (
	// ErrWrongPhase is returned when an operation is attempted outside the
	// phase it applies to.
	ErrWrongPhase = errors.New("game: operation not valid in current phase")
	// ErrNotYourTurn is returned when a seat other than CurrentTurn plays or passes.
	ErrNotYourTurn = errors.New("game: not this seat's turn")
	// ErrCardNotHeld is returned when a seat references a card it does not hold.
	ErrCardNotHeld = errors.New("game: seat does not hold that card")
	// ErrDoesNotBeat is returned when a play fails to beat the last play on the trick.
	ErrDoesNotBeat = errors.New("game: play does not beat the current trick")
	// ErrCannotPassFreeLead is returned when a seat passes while holding the lead.
	ErrCannotPassFreeLead = errors.New("game: cannot pass on a free lead")
	// ErrSeatAlreadyOut is returned when an already-finished seat attempts to act.
	ErrSeatAlreadyOut = errors.New("game: seat has already gone out")
)

// RoundAction records what a seat did on the current trick.
type RoundAction int

const (
	// NoAction means the seat has not yet acted on the current trick.
	NoAction RoundAction = iota
	ActionPlayed
	ActionPassed
)

// LastPlay is the most recent accepted play on the current trick, or nil if
// the trick is awaiting a free lead.
type LastPlay struct {
	Seat  Seat
	Cards rules.Classification
}

// Deal is a single hand of Guandan from deal-out through scoring. It is
// mutated from a single goroutine (the owning room's actor loop) and holds
// no reference back to its match or room; state changes are surfaced
// through its EventBus.
type Deal struct {
	Level deck.Rank
	Phase Phase

	hands       [4][]deck.Card
	finished    []Seat // seats that have emptied their hand, in finishing order
	out         [4]bool
	currentTurn Seat
	lastPlay    *LastPlay
	actions     [4]RoundAction

	tribute *tributeState

	isBot func(Seat) bool
	bus   *EventBus
	log   zerolog.Logger
	rng   *rand.Rand
	now   func() time.Time
}

// Collaborators bundles the host-supplied dependencies a Deal needs: which
// seats are bot-controlled, a clock for event timestamps, a logger, and a
// source of randomness for shuffling.
type Collaborators struct {
	IsBot  func(Seat) bool
	Logger zerolog.Logger
	Rng    *rand.Rand
	Now    func() time.Time
}

// NewDeal constructs a deal at the current match level, ready to Start.
// previousFinish is the finishing order of the prior deal (nil for the
// match's first deal) and drives tribute computation. activeTeam (0 or 1)
// decides who leads the match's very first deal, when there is no previous
// finish to derive it from.
func NewDeal(level deck.Rank, previousFinish []Seat, activeTeam int, collab Collaborators) *Deal {
	now := collab.Now
	if now == nil {
		now = time.Now
	}
	isBot := collab.IsBot
	if isBot == nil {
		isBot = func(Seat) bool { return false }
	}
	return &Deal{
		Level:   level,
		Phase:   Waiting,
		isBot:   isBot,
		bus:     NewEventBus(),
		log:     collab.Logger,
		rng:     collab.Rng,
		now:     now,
		tribute: newTributeState(previousFinish, activeTeam),
	}
}

// Events returns the deal's event bus for subscription.
func (d *Deal) Events() *EventBus {
	return d.bus
}

// Hand returns the current hand held by seat s, sorted descending by logic
// value under the deal's level.
func (d *Deal) Hand(s Seat) []deck.Card {
	return append([]deck.Card(nil), d.hands[s]...)
}

// CurrentTurn returns the seat on the move during the Playing phase.
func (d *Deal) CurrentTurn() Seat {
	return d.currentTurn
}

// LastPlay returns the last accepted play on the current trick, or nil on a
// free lead.
func (d *Deal) LastPlay() *LastPlay {
	return d.lastPlay
}

// Finished returns seats that have emptied their hand, in finishing order.
func (d *Deal) Finished() []Seat {
	return append([]Seat(nil), d.finished...)
}

// ActionOf returns what seat s did on the current trick so far.
func (d *Deal) ActionOf(s Seat) RoundAction {
	return d.actions[s]
}

// Start deals 27 cards to each seat and transitions into Tribute (if owed)
// or directly into Playing.
func (d *Deal) Start() error {
	if d.Phase != Waiting {
		return ErrWrongPhase
	}
	d.Phase = Dealing

	dk := deck.NewDeck()
	dk.Shuffle(d.rng)
	hands, err := dk.DealHands()
	if err != nil {
		return err
	}
	for s := 0; s < numSeats; s++ {
		d.hands[s] = deck.SortDescending(hands[s], d.Level)
	}

	d.enterPostDeal()
	return nil
}

// enterPostDeal runs once hands are populated: it announces the deal and
// moves into Tribute (resolving any bot payers immediately) or straight
// into Playing when no tribute is owed.
func (d *Deal) enterPostDeal() {
	d.bus.Publish(Event{Type: EventDealStarted, Timestamp: d.now()})

	if d.tribute.owed() {
		d.Phase = Tribute
		d.resolveBotTributePayers()
		return
	}
	d.beginPlaying(d.tribute.firstLeader())
}

func (d *Deal) emit(t EventType, s Seat, data interface{}) {
	d.bus.Publish(Event{Type: t, Seat: s, Timestamp: d.now(), Data: data})
}
