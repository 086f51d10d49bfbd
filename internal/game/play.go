package game

import (
	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/rules"
)

// beginPlaying transitions into the Playing phase with leader on a free
// lead, and resets the trick's round-action tracking.
func (d *Deal) beginPlaying(leader Seat) {
	d.Phase = Playing
	d.currentTurn = leader
	d.lastPlay = nil
	d.resetActions()
}

func (d *Deal) resetActions() {
	for i := range d.actions {
		d.actions[i] = NoAction
	}
}

// Play attempts to have seat s play the cards identified by ids. It fails
// if it is not s's turn, s does not hold every card, the resulting
// combination is not a legal hand type, or the combination does not beat
// the current trick's last play (when one exists).
func (d *Deal) Play(s Seat, ids []deck.ID) error {
	if d.Phase != Playing {
		return ErrWrongPhase
	}
	if s != d.currentTurn {
		return ErrNotYourTurn
	}
	if d.out[s] {
		return ErrSeatAlreadyOut
	}

	cards, err := takeCards(d.hands[s], ids)
	if err != nil {
		return err
	}
	cls, err := rules.Classify(cards, d.Level)
	if err != nil {
		return err
	}
	if d.lastPlay != nil && !rules.Beats(cls, d.lastPlay.Cards) {
		return ErrDoesNotBeat
	}

	d.hands[s] = removeCards(d.hands[s], ids)
	d.lastPlay = &LastPlay{Seat: s, Cards: cls}
	d.resetActions()
	d.actions[s] = ActionPlayed
	d.emit(EventHandPlayed, s, cls)

	wentOut := len(d.hands[s]) == 0
	if wentOut {
		d.finishSeat(s)
		if d.checkDealEnd(s) {
			return nil
		}
	}

	if d.trickOver() {
		d.endTrick(wentOut)
		return nil
	}

	d.advanceTurn()
	return nil
}

// Pass skips seat s's turn on the current trick. Passing on a free lead
// (no last play, or the last play belongs to s) is illegal.
func (d *Deal) Pass(s Seat) error {
	if d.Phase != Playing {
		return ErrWrongPhase
	}
	if s != d.currentTurn {
		return ErrNotYourTurn
	}
	if d.out[s] {
		return ErrSeatAlreadyOut
	}
	if d.lastPlay == nil || d.lastPlay.Seat == s {
		return ErrCannotPassFreeLead
	}

	d.actions[s] = ActionPassed
	d.emit(EventPassed, s, nil)

	if d.trickOver() {
		d.endTrick(d.out[d.lastPlay.Seat])
		return nil
	}
	d.advanceTurn()
	return nil
}

// trickOver reports whether every active seat other than the last play's
// owner has passed, closing out the current trick.
func (d *Deal) trickOver() bool {
	if d.lastPlay == nil {
		return false
	}
	for s := Seat(0); s < numSeats; s++ {
		if d.out[s] || s == d.lastPlay.Seat {
			continue
		}
		if d.actions[s] != ActionPassed {
			return false
		}
	}
	return true
}

// endTrick closes the current trick and opens the next free lead. wentOut
// indicates the trick winner emptied their hand on the winning play, which
// triggers jiefeng: leadership carries to the winner's partner instead of
// following normal seat order, if the partner is still in the deal.
func (d *Deal) endTrick(wentOut bool) {
	winner := d.lastPlay.Seat
	d.emit(EventTrickEnded, winner, nil)

	if d.Phase != Playing {
		return // deal already ended mid-trick
	}

	leader := winner
	if wentOut {
		partner := winner.Partner()
		if !d.out[partner] {
			leader = partner
		} else {
			leader = d.nextActive(winner)
		}
	}
	d.beginPlaying(leader)
}

// advanceTurn moves currentTurn to the next active (not-out) seat.
func (d *Deal) advanceTurn() {
	d.currentTurn = d.nextActive(d.currentTurn)
}

func (d *Deal) nextActive(from Seat) Seat {
	s := from.Next()
	for d.out[s] && s != from {
		s = s.Next()
	}
	return s
}

// finishSeat records s as having emptied its hand.
func (d *Deal) finishSeat(s Seat) {
	d.out[s] = true
	d.finished = append(d.finished, s)
}

// checkDealEnd transitions to Score once either (a) both seats of just's team
// have gone out (double win — the last two seats' relative order no longer
// matters) or (b) three seats have gone out (forcing the fourth's
// placement). Returns true if the deal ended.
func (d *Deal) checkDealEnd(just Seat) bool {
	doubleWin := d.out[just] && d.out[just.Partner()]
	if !doubleWin && len(d.finished) < 3 {
		return false
	}
	for s := Seat(0); s < numSeats; s++ {
		if !d.out[s] {
			d.finished = append(d.finished, s)
		}
	}
	d.Phase = Score
	d.emit(EventDealEnded, d.finished[0], d.finished)
	return true
}

// takeCards resolves ids against hand, failing if any id is not held or is
// duplicated.
func takeCards(hand []deck.Card, ids []deck.ID) ([]deck.Card, error) {
	out := make([]deck.Card, 0, len(ids))
	used := make(map[deck.ID]bool, len(ids))
	for _, id := range ids {
		if used[id] {
			return nil, ErrCardNotHeld
		}
		used[id] = true
		c, _, ok := findCard(hand, id)
		if !ok {
			return nil, ErrCardNotHeld
		}
		out = append(out, c)
	}
	return out, nil
}

func removeCards(hand []deck.Card, ids []deck.ID) []deck.Card {
	remove := make(map[deck.ID]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}
	out := make([]deck.Card, 0, len(hand)-len(ids))
	for _, c := range hand {
		if !remove[c.ID] {
			out = append(out, c)
		}
	}
	return out
}
