package room

import (
	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/game"
	"github.com/lox/guandan/internal/protocol"
	"github.com/lox/guandan/internal/rules"
)

// beginDeal starts the deal that follows prevResult (zero-valued for the
// match's first deal) and announces it to every connected seat.
func (r *Room) beginDeal(prevResult game.Result) {
	collab := game.Collaborators{
		IsBot:  func(s game.Seat) bool { return r.seats[s].IsBot },
		Logger: r.logger,
		Rng:    r.rng,
		Now:    r.clock.Now,
	}
	d := r.match.NextDeal(prevResult, collab)
	d.Events().Subscribe(r.onDealEvent)
	r.deal = d

	if err := d.Start(); err != nil {
		r.logger.Error().Err(err).Msg("failed to start deal")
		return
	}
	r.broadcastDealStarted()
	r.broadcastGameState()
	r.scheduleBotTurnIfNeeded()
}

func (r *Room) broadcastDealStarted() {
	for i, s := range r.seats {
		if s.Session == nil {
			continue
		}
		_ = s.Session.Send(&protocol.DealStarted{
			Type:     "deal_started",
			Level:    r.deal.Level.String(),
			Hand:     cardIDs(r.deal.Hand(game.Seat(i))),
			YourSeat: i,
		})
	}
}

// onDealEvent translates a Deal's internal event into the wire Event and
// broadcasts it; a deal-ended event additionally drives the match forward.
func (r *Room) onDealEvent(ev game.Event) {
	msg := &protocol.Event{
		Type:  "event",
		Kind:  string(ev.Type),
		Seat:  int(ev.Seat),
		Level: r.deal.Level.String(),
	}
	switch data := ev.Data.(type) {
	case rules.Classification:
		msg.Cards = cardIDs(data.Cards)
	case deck.Card:
		msg.Cards = []string{string(data.ID)}
	case []game.Seat:
		for _, s := range data {
			msg.Finish = append(msg.Finish, int(s))
		}
	}
	r.broadcastEvent(msg)

	if ev.Type == game.EventDealEnded {
		r.onDealEnded()
	}
}

func (r *Room) broadcastEvent(msg *protocol.Event) {
	for _, s := range r.seats {
		if s.Session != nil {
			_ = s.Session.Send(msg)
		}
	}
}

// onDealEnded folds the concluded deal's result into the match: it
// broadcasts the finishing order, applies the level-up, and either
// schedules the next deal after the grace interval or, if the match has
// concluded, announces the winner and resets the room to Waiting.
func (r *Room) onDealEnded() {
	res := r.deal.Result()
	r.broadcastGameOver(res)

	if r.match.ApplyResult(res) {
		r.broadcastMatchOver()
		r.deal = nil
		r.resetToWaiting()
		return
	}

	r.deal = nil
	r.match.ScheduleNext(func() {
		r.Submit(func(r *Room) { r.beginDeal(res) })
	})
}

func (r *Room) broadcastGameOver(res game.Result) {
	winners := make([]int, len(res.Finish))
	for i, s := range res.Finish {
		winners[i] = int(s)
	}
	msg := &protocol.GameOver{Type: "game_over", Winners: winners}
	for _, s := range r.seats {
		if s.Session != nil {
			_ = s.Session.Send(msg)
		}
	}
}

func (r *Room) broadcastMatchOver() {
	msg := &protocol.MatchOver{
		Type:       "match_over",
		Team:       r.match.Winner,
		TeamLevels: []string{r.match.Levels[0].String(), r.match.Levels[1].String()},
	}
	for _, s := range r.seats {
		if s.Session != nil {
			_ = s.Session.Send(msg)
		}
	}
}

// resetToWaiting clears the match and any bot-filled seats once a match
// has concluded (naturally or via ForceEnd), returning the room to its
// pre-match roster state.
func (r *Room) resetToWaiting() {
	r.match = nil
	r.deal = nil
	for _, s := range r.seats {
		s.Ready = false
		if s.IsBot {
			s.clear()
		}
	}
	r.broadcastRoomState()
}

// afterDealMutation follows a successful Play/Pass/PayTribute/
// ReturnTribute: if the deal concluded, onDealEvent already handled
// advancing the match (possibly resetting to Waiting) before this runs;
// otherwise it broadcasts the new state and schedules the next bot move.
func (r *Room) afterDealMutation() {
	if r.deal == nil {
		return
	}
	r.broadcastGameState()
	r.scheduleBotTurnIfNeeded()
}

// scheduleBotTurnIfNeeded looks at whoever is on the move: a human seat
// gets a TurnRequest, a bot seat gets its decision deferred onto the
// clock so it never mutates the deal off the room's own goroutine.
func (r *Room) scheduleBotTurnIfNeeded() {
	if r.deal == nil || r.deal.Phase != game.Playing {
		return
	}
	seat := r.deal.CurrentTurn()
	if !r.seats[seat].IsBot {
		r.sendTurnRequest(seat)
		return
	}

	r.botGeneration++
	gen := r.botGeneration
	deal := r.deal
	r.clock.AfterFunc(botDecisionDelay, func() {
		r.Submit(func(r *Room) { r.fireBotTurn(deal, gen) })
	})
}

func (r *Room) sendTurnRequest(seat game.Seat) {
	s := r.seats[seat]
	if s.Session == nil {
		return
	}
	_ = s.Session.Send(&protocol.TurnRequest{
		Type:          "turn_request",
		MustBeatCards: r.deal.LastPlay() != nil,
	})
}

// fireBotTurn runs a previously scheduled bot decision. deal and gen pin
// down which deal and which scheduling round this timer belongs to: if
// either has moved on (a new deal started, or a later turn superseded
// this one) the room has already dealt with that turn and this fires as
// a no-op.
func (r *Room) fireBotTurn(deal *game.Deal, gen int) {
	if r.deal != deal || gen != r.botGeneration {
		return
	}
	seat := deal.CurrentTurn()
	hand := deal.Hand(seat)

	var target *rules.Classification
	if lp := deal.LastPlay(); lp != nil {
		target = &lp.Cards
	}

	decision := r.strategy.Decide(hand, deal.Level, target)
	var err error
	if decision.Pass {
		err = deal.Pass(seat)
	} else {
		err = deal.Play(seat, idsOf(decision.Cards))
	}
	if err != nil {
		r.logger.Error().Err(err).Int("seat", int(seat)).Msg("bot decision rejected by deal")
		return
	}
	r.afterDealMutation()
}

func idsOf(cards []deck.Card) []deck.ID {
	ids := make([]deck.ID, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
