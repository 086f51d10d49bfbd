package room

import (
	"github.com/google/uuid"

	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/game"
	"github.com/lox/guandan/internal/match"
)

// Error codes carried in protocol.ErrorMsg.Code.
const (
	codeRoomFull      = "room_full"
	codeInvalidSeat   = "invalid_seat"
	codeNotHost       = "not_host"
	codeMatchActive   = "match_active"
	codeSeatTaken     = "seat_taken"
	codeRuleViolation = "rule_violation"
	codeUnauthorized  = "unauthorized"
)

// hostSeat is always seat 0, per spec's "seat 0 (the host)".
const hostSeat = 0

// seatIndex finds the seat currently bound to session, by interface
// identity (the same Session value Join or Reconnect bound it to).
func (r *Room) seatIndex(session Session) (int, bool) {
	for i, s := range r.seats {
		if s.Session == session {
			return i, true
		}
	}
	return -1, false
}

func (r *Room) sendError(session Session, code, message string) {
	_ = session.Send(newErrorMsg(code, message))
}

// Join binds session to a seat: it reoccupies a disconnected seat whose
// stored name matches (reconnect-by-name), or claims the lowest-numbered
// empty seat. A full room rejects the join with a capacity error.
func (r *Room) Join(session Session, name string) {
	r.Submit(func(r *Room) { r.join(session, name) })
}

func (r *Room) join(session Session, name string) {
	for i, s := range r.seats {
		if s.Name == name && !s.Connected {
			r.bindSeat(i, session, name)
			return
		}
	}
	for i, s := range r.seats {
		if s.empty() {
			r.bindSeat(i, session, name)
			return
		}
	}
	r.sendError(session, codeRoomFull, "room is full")
}

func (r *Room) bindSeat(i int, session Session, name string) {
	s := r.seats[i]
	s.Name = name
	s.Session = session
	s.Connected = true
	s.IsBot = false
	if s.Token == "" {
		s.Token = uuid.NewString()
	}
	_ = session.Send(newWelcomeMsg(r.ID.String(), i, s.Token))

	if r.deal != nil {
		_ = session.Send(r.gameStateFor(i))
	}
	r.broadcastRoomState()
}

// Reconnect rebinds session to the seat matching token, and if a deal is
// in progress pushes that seat a private state snapshot.
func (r *Room) Reconnect(session Session, token string) {
	r.Submit(func(r *Room) { r.reconnect(session, token) })
}

func (r *Room) reconnect(session Session, token string) {
	for i, s := range r.seats {
		if s.Token == token && s.occupied() {
			s.Session = session
			s.Connected = true
			_ = session.Send(newWelcomeMsg(r.ID.String(), i, s.Token))
			if r.deal != nil {
				_ = session.Send(r.gameStateFor(i))
			}
			r.broadcastRoomState()
			return
		}
	}
	r.sendError(session, codeInvalidSeat, "unknown reconnect token")
}

// Ready toggles the sending seat's ready flag; when all four seats are
// ready the match auto-starts.
func (r *Room) Ready(session Session) {
	r.Submit(func(r *Room) { r.ready(session) })
}

func (r *Room) ready(session Session) {
	i, ok := r.seatIndex(session)
	if !ok || r.match != nil {
		return
	}
	r.seats[i].Ready = !r.seats[i].Ready
	r.broadcastRoomState()

	for _, s := range r.seats {
		if !s.Ready {
			return
		}
	}
	r.startMatch()
}

// Start force-starts the match immediately; only the host (seat 0) may
// call it. Empty seats are filled with bots.
func (r *Room) Start(session Session) {
	r.Submit(func(r *Room) { r.start(session) })
}

func (r *Room) start(session Session) {
	i, ok := r.seatIndex(session)
	if !ok {
		return
	}
	if i != hostSeat {
		r.sendError(session, codeNotHost, "only the host seat may force-start")
		return
	}
	if r.match != nil {
		return
	}
	r.startMatch()
}

func (r *Room) startMatch() {
	for _, s := range r.seats {
		if s.empty() {
			s.Name = "bot"
			s.IsBot = true
			s.Connected = true
			s.Ready = true
		}
	}
	r.match = match.NewMatch(r.logger, r.clock)
	r.broadcastRoomState()
	r.beginDeal(game.Result{})
}

// SwitchSeat moves the sending seat to target, which must be empty; only
// legal before a match is active.
func (r *Room) SwitchSeat(session Session, target int) {
	r.Submit(func(r *Room) { r.switchSeat(session, target) })
}

func (r *Room) switchSeat(session Session, target int) {
	i, ok := r.seatIndex(session)
	if !ok {
		return
	}
	if r.match != nil {
		r.sendError(session, codeMatchActive, "cannot switch seats once a match is active")
		return
	}
	if target < 0 || target > 3 {
		r.sendError(session, codeInvalidSeat, "no such seat")
		return
	}
	if !r.seats[target].empty() {
		r.sendError(session, codeSeatTaken, "seat is occupied")
		return
	}
	*r.seats[target] = *r.seats[i]
	r.seats[i].clear()
	r.broadcastRoomState()
}

// SetMode changes the room's game mode; only legal before a match starts.
func (r *Room) SetMode(session Session, mode string) {
	r.Submit(func(r *Room) { r.setMode(session, mode) })
}

func (r *Room) setMode(session Session, mode string) {
	if _, ok := r.seatIndex(session); !ok {
		return
	}
	if r.match != nil {
		return
	}
	if mode != ModeNormal && mode != ModeSkill {
		return
	}
	r.mode = mode
	r.broadcastRoomState()
}

// ForceEnd aborts the current match; only the host may call it.
func (r *Room) ForceEnd(session Session) {
	r.Submit(func(r *Room) { r.forceEnd(session) })
}

func (r *Room) forceEnd(session Session) {
	i, ok := r.seatIndex(session)
	if !ok {
		return
	}
	if i != hostSeat {
		r.sendError(session, codeUnauthorized, "only the host may force-end the match")
		return
	}
	if r.match == nil {
		return
	}
	r.match.ForceEnd()
	r.deal = nil
	r.resetToWaiting()
}

// Chat relays text to every other occupied seat.
func (r *Room) Chat(session Session, text string) {
	r.Submit(func(r *Room) { r.chat(session, text) })
}

func (r *Room) chat(session Session, text string) {
	i, ok := r.seatIndex(session)
	if !ok {
		return
	}
	msg := newChatMessage(r.seats[i].Name, text, i, r.now())
	for j, s := range r.seats {
		if j == i || s.Session == nil {
			continue
		}
		_ = s.Session.Send(msg)
	}
}

// Disconnect marks session's seat as dropped. If no match is active the
// seat is cleared entirely; otherwise it is marked disconnected but
// remains present to the deal engine (spec forbids mid-match bot
// substitution for a disconnected human).
func (r *Room) Disconnect(session Session) {
	r.Submit(func(r *Room) { r.disconnect(session) })
}

func (r *Room) disconnect(session Session) {
	i, ok := r.seatIndex(session)
	if !ok {
		return
	}
	r.seats[i].Session = nil
	if r.match == nil {
		r.seats[i].clear()
		r.broadcastRoomState()
		return
	}
	r.seats[i].Connected = false
	r.broadcastRoomState()
}

// Play submits a play of cardIDs from the sending seat's hand.
func (r *Room) Play(session Session, cardIDs []string) {
	r.Submit(func(r *Room) { r.play(session, cardIDs) })
}

func (r *Room) play(session Session, cardIDs []string) {
	i, ok := r.seatIndex(session)
	if !ok || r.deal == nil {
		return
	}
	ids := make([]deck.ID, len(cardIDs))
	for j, id := range cardIDs {
		ids[j] = deck.ID(id)
	}
	if err := r.deal.Play(game.Seat(i), ids); err != nil {
		r.reportDealError(session, err)
		return
	}
	r.afterDealMutation()
}

// Pass declines to play on the current trick.
func (r *Room) Pass(session Session) {
	r.Submit(func(r *Room) { r.pass(session) })
}

func (r *Room) pass(session Session) {
	i, ok := r.seatIndex(session)
	if !ok || r.deal == nil {
		return
	}
	if err := r.deal.Pass(game.Seat(i)); err != nil {
		r.reportDealError(session, err)
		return
	}
	r.afterDealMutation()
}

// PayTribute submits the sending seat's owed tribute card.
func (r *Room) PayTribute(session Session, cardID string) {
	r.Submit(func(r *Room) { r.payTribute(session, cardID) })
}

func (r *Room) payTribute(session Session, cardID string) {
	i, ok := r.seatIndex(session)
	if !ok || r.deal == nil {
		return
	}
	if err := r.deal.PayTribute(game.Seat(i), deck.ID(cardID)); err != nil {
		r.reportDealError(session, err)
		return
	}
	r.afterDealMutation()
}

// ReturnTribute submits the sending seat's return card for the named
// payer.
func (r *Room) ReturnTribute(session Session, toSeat int, cardID string) {
	r.Submit(func(r *Room) { r.returnTribute(session, toSeat, cardID) })
}

func (r *Room) returnTribute(session Session, toSeat int, cardID string) {
	i, ok := r.seatIndex(session)
	if !ok || r.deal == nil {
		return
	}
	if err := r.deal.ReturnTribute(game.Seat(i), game.Seat(toSeat), deck.ID(cardID)); err != nil {
		r.reportDealError(session, err)
		return
	}
	r.afterDealMutation()
}

// reportDealError applies spec's error taxonomy: phase errors (wrong
// phase, not your turn) are stale-reconnect noise and dropped silently;
// everything else is a rule violation reported privately, with the turn
// retained.
func (r *Room) reportDealError(session Session, err error) {
	switch err {
	case game.ErrWrongPhase, game.ErrNotYourTurn, game.ErrSeatAlreadyOut:
		return
	default:
		r.sendError(session, codeRuleViolation, err.Error())
	}
}
