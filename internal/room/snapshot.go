package room

import (
	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/game"
	"github.com/lox/guandan/internal/protocol"
)

func (r *Room) now() int64 {
	return r.clock.Now().UnixMilli()
}

// seatNames renders each seat's occupant for RoomState/SeatUpdate: empty
// for an open seat, the player's name otherwise (bots are named "bot" at
// match start).
func (r *Room) seatNames() []string {
	names := make([]string, 4)
	for i, s := range r.seats {
		names[i] = s.Name
	}
	return names
}

func (r *Room) readyFlags() []bool {
	flags := make([]bool, 4)
	for i, s := range r.seats {
		flags[i] = s.Ready
	}
	return flags
}

func (r *Room) broadcastRoomState() {
	msg := &protocol.RoomState{
		Type:     "room_state",
		Seats:    r.seatNames(),
		Ready:    r.readyFlags(),
		HostSeat: hostSeat,
		Mode:     r.mode,
	}
	for _, s := range r.seats {
		if s.Session != nil {
			_ = s.Session.Send(msg)
		}
	}
}

// gameStateFor builds the per-recipient tailored snapshot for seat: its
// own hand in full, the other three seats as counts only (spec's §6
// per-seat redaction).
func (r *Room) gameStateFor(seat int) *protocol.GameState {
	d := r.deal
	counts := make([]int, 4)
	for i := 0; i < 4; i++ {
		counts[i] = len(d.Hand(game.Seat(i)))
	}

	var lastHand []string
	lastHandBy := -1
	if lp := d.LastPlay(); lp != nil {
		lastHandBy = int(lp.Seat)
		for _, c := range lp.Cards.Cards {
			lastHand = append(lastHand, string(c.ID))
		}
	}

	actions := make([]string, 4)
	for i := 0; i < 4; i++ {
		actions[i] = roundActionName(d.ActionOf(game.Seat(i)))
	}

	var winners []int
	for _, s := range d.Finished() {
		winners = append(winners, int(s))
	}

	return &protocol.GameState{
		Type:         "game_state",
		Phase:        d.Phase.String(),
		Level:        d.Level.String(),
		CurrentTurn:  int(d.CurrentTurn()),
		YourSeat:     seat,
		YourHand:     cardIDs(d.Hand(game.Seat(seat))),
		HandCounts:   counts,
		LastHand:     lastHand,
		LastHandBy:   lastHandBy,
		RoundActions: actions,
		Winners:      winners,
		TributeOwed:  d.Phase == game.Tribute || d.Phase == game.ReturnTribute,
		TeamLevels:   []string{r.match.Levels[0].String(), r.match.Levels[1].String()},
		ActiveTeam:   r.match.ActiveTeam,
	}
}

func cardIDs(cards []deck.Card) []string {
	if len(cards) == 0 {
		return nil
	}
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = string(c.ID)
	}
	return ids
}

func roundActionName(a game.RoundAction) string {
	switch a {
	case game.ActionPlayed:
		return "played"
	case game.ActionPassed:
		return "passed"
	default:
		return "none"
	}
}

// broadcastGameState sends every connected seat its own tailored snapshot.
func (r *Room) broadcastGameState() {
	for i, s := range r.seats {
		if s.Session != nil {
			_ = s.Session.Send(r.gameStateFor(i))
		}
	}
}
