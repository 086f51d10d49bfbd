package game

import "github.com/lox/guandan/internal/deck"

// tributeScenario classifies how the previous deal finished, which decides
// who owes tribute this deal.
type tributeScenario int

const (
	scenarioNone       tributeScenario = iota // first deal of the match, or a tied previous finish
	scenarioSingleWin                         // champion's partner finished 3rd
	scenarioDoubleWin                         // champion's partner finished 2nd
)

// tributeState tracks the tribute/return-tribute exchange computed from the
// previous deal's finishing order, and the cards exchanged in this one.
type tributeState struct {
	scenario   tributeScenario
	prevFinish []Seat
	activeTeam int

	payers    []Seat // seats owing tribute, highest-ranked-owed first
	receivers []Seat // receivers[i] receives from payers[i]
	resisted  bool

	paid    map[Seat]deck.Card
	pending []Seat // payers who still owe a tribute card
	owing   []Seat // receivers who still owe a return card
}

func newTributeState(prevFinish []Seat, activeTeam int) *tributeState {
	ts := &tributeState{prevFinish: prevFinish, activeTeam: activeTeam, paid: map[Seat]deck.Card{}}
	if len(prevFinish) != 4 {
		ts.scenario = scenarioNone
		return ts
	}
	champion, second, third, last := prevFinish[0], prevFinish[1], prevFinish[2], prevFinish[3]
	switch {
	case champion.Team() == second.Team():
		ts.scenario = scenarioDoubleWin
		ts.payers = []Seat{last, third}
		ts.receivers = []Seat{champion, second}
	case champion.Team() == last.Team():
		// champion's team also took last place: a tie, no tribute owed.
		ts.scenario = scenarioNone
	default:
		ts.scenario = scenarioSingleWin
		ts.payers = []Seat{last}
		ts.receivers = []Seat{champion}
	}
	return ts
}

// owed reports whether this deal has a tribute exchange pending.
func (ts *tributeState) owed() bool {
	return ts.scenario != scenarioNone
}

// firstLeader is who leads the opening trick when no tribute is owed, or
// tribute is owed but resisted: the previous deal's last-place finisher, so
// that play continues from the weakest hand. On the match's first deal
// there is no previous finish, so the active team's seat 0 leads.
func (ts *tributeState) firstLeader() Seat {
	if len(ts.prevFinish) == 4 {
		return ts.prevFinish[3]
	}
	return Seat(ts.activeTeam)
}

// holdsBothJokers reports whether the union of the given seats' hands
// contains both the small and big joker — the anti-tribute ("resistance")
// condition that lets the paying side refuse tribute entirely.
func holdsBothJokers(hands [4][]deck.Card, seats []Seat) bool {
	var small, big bool
	for _, s := range seats {
		for _, c := range hands[s] {
			if c.Rank == deck.SmallJoker {
				small = true
			}
			if c.Rank == deck.BigJoker {
				big = true
			}
		}
	}
	return small && big
}

// resolveBotTributePayers auto-selects a tribute card (the largest held)
// for any payer seat controlled by a bot, immediately on phase entry.
func (d *Deal) resolveBotTributePayers() {
	if holdsBothJokers(d.hands, d.tribute.payers) {
		d.tribute.resisted = true
		d.emit(EventTributeSkipped, d.tribute.payers[0], nil)
		d.beginPlaying(d.tribute.firstLeader())
		return
	}
	d.tribute.pending = append([]Seat(nil), d.tribute.payers...)
	for _, s := range d.tribute.payers {
		if d.isBot(s) {
			largest := highestCard(d.hands[s], d.Level)
			_ = d.PayTribute(s, largest.ID)
		}
	}
}

// highestCard returns the largest card in hand by logic value under level.
func highestCard(hand []deck.Card, level deck.Rank) deck.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		if c.LogicValue(level) > best.LogicValue(level) {
			best = c
		}
	}
	return best
}

// lowestCard returns the smallest card in hand by logic value under level.
func lowestCard(hand []deck.Card, level deck.Rank) deck.Card {
	best := hand[0]
	for _, c := range hand[1:] {
		if c.LogicValue(level) < best.LogicValue(level) {
			best = c
		}
	}
	return best
}

// PayTribute transfers the card identified by id from payer's hand to its
// assigned receiver. Valid only in the Tribute phase, for a seat in the
// owed-and-unresisted payer set.
func (d *Deal) PayTribute(payer Seat, id deck.ID) error {
	if d.Phase != Tribute {
		return ErrWrongPhase
	}
	idx := -1
	for i, s := range d.tribute.pending {
		if s == payer {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrWrongPhase
	}
	card, ci, ok := findCard(d.hands[payer], id)
	if !ok {
		return ErrCardNotHeld
	}
	receiver := d.tribute.receivers[payerIndex(d.tribute.payers, payer)]
	d.hands[payer] = removeCardAt(d.hands[payer], ci)
	d.hands[receiver] = deck.SortDescending(append(d.hands[receiver], card), d.Level)
	d.tribute.paid[payer] = card
	d.tribute.pending = removeSeat(d.tribute.pending, payer)
	d.tribute.owing = append(d.tribute.owing, receiver)
	d.emit(EventTributePaid, payer, card)

	if len(d.tribute.pending) == 0 {
		d.beginReturnTribute()
	}
	return nil
}

func (d *Deal) beginReturnTribute() {
	d.Phase = ReturnTribute
	for _, receiver := range d.tribute.owing {
		if d.isBot(receiver) {
			payer := d.tribute.payerFor(receiver, d.tribute.payers, d.tribute.receivers)
			lowest := lowestCard(d.hands[receiver], d.Level)
			_ = d.ReturnTribute(receiver, payer, lowest.ID)
		}
	}
}

// payerFor finds which payer a receiver must return a card to.
func (ts *tributeState) payerFor(receiver Seat, payers, receivers []Seat) Seat {
	for i, r := range receivers {
		if r == receiver {
			return payers[i]
		}
	}
	return receiver
}

// ReturnTribute transfers the card identified by id from receiver back to
// the payer it owes a return to. Any card the receiver holds may be
// returned, including the card the payer originally paid.
func (d *Deal) ReturnTribute(receiver Seat, payer Seat, id deck.ID) error {
	if d.Phase != ReturnTribute {
		return ErrWrongPhase
	}
	if !containsSeat(d.tribute.owing, receiver) {
		return ErrWrongPhase
	}
	card, ci, ok := findCard(d.hands[receiver], id)
	if !ok {
		return ErrCardNotHeld
	}
	d.hands[receiver] = removeCardAt(d.hands[receiver], ci)
	d.hands[payer] = deck.SortDescending(append(d.hands[payer], card), d.Level)
	d.tribute.owing = removeSeat(d.tribute.owing, receiver)
	d.emit(EventTributeReturned, receiver, card)

	if len(d.tribute.owing) == 0 {
		d.beginPlaying(d.tributeLeader())
	}
	return nil
}

// tributeLeader is who opens play once tribute has resolved. A single payer
// always leads. With two payers (a double-win deal), whichever paid the
// larger tribute card leads; a tie favors the last-place payer.
func (d *Deal) tributeLeader() Seat {
	if d.tribute.resisted || len(d.tribute.payers) == 0 {
		return d.tribute.firstLeader()
	}
	if len(d.tribute.payers) == 1 {
		return d.tribute.payers[0]
	}
	last := d.tribute.payers[0]  // prevFinish[3]
	third := d.tribute.payers[1] // prevFinish[2]
	lastCard, thirdCard := d.tribute.paid[last], d.tribute.paid[third]
	if thirdCard.LogicValue(d.Level) > lastCard.LogicValue(d.Level) {
		return third
	}
	return last
}

func payerIndex(payers []Seat, s Seat) int {
	for i, p := range payers {
		if p == s {
			return i
		}
	}
	return 0
}

func findCard(hand []deck.Card, id deck.ID) (deck.Card, int, bool) {
	for i, c := range hand {
		if c.ID == id {
			return c, i, true
		}
	}
	return deck.Card{}, -1, false
}

func removeCardAt(hand []deck.Card, idx int) []deck.Card {
	out := make([]deck.Card, 0, len(hand)-1)
	out = append(out, hand[:idx]...)
	out = append(out, hand[idx+1:]...)
	return out
}

func removeSeat(seats []Seat, s Seat) []Seat {
	out := make([]Seat, 0, len(seats))
	for _, x := range seats {
		if x != s {
			out = append(out, x)
		}
	}
	return out
}

func containsSeat(seats []Seat, s Seat) bool {
	for _, x := range seats {
		if x == s {
			return true
		}
	}
	return false
}
