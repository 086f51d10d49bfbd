package room

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lox/guandan/internal/bot"
	"github.com/lox/guandan/internal/protocol"
)

// fakeSession is an in-memory Session for tests: Send appends rather than
// touching any real transport.
type fakeSession struct {
	messages []interface{}
}

func (f *fakeSession) Send(v interface{}) error {
	f.messages = append(f.messages, v)
	return nil
}

func (f *fakeSession) last() interface{} {
	if len(f.messages) == 0 {
		return nil
	}
	return f.messages[len(f.messages)-1]
}

func newTestRoom(t *testing.T, clock quartz.Clock) *Room {
	t.Helper()
	r := New(zerolog.Nop(), clock, rand.New(rand.NewSource(1)), bot.Heuristic{})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go r.Run(ctx)
	return r
}

// drain blocks until every command submitted so far has been applied, by
// enqueueing one more closure behind them and waiting for it to run.
func drain(t *testing.T, r *Room) {
	t.Helper()
	done := make(chan struct{})
	r.Submit(func(r *Room) { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("room actor did not drain its command queue")
	}
}

// inspect runs fn on the room's own actor goroutine and waits for it to
// finish, so tests can read Room state without racing the actor.
func inspect(t *testing.T, r *Room, fn func(r *Room)) {
	t.Helper()
	done := make(chan struct{})
	r.Submit(func(r *Room) {
		fn(r)
		close(done)
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("room actor did not process inspection")
	}
}

func TestJoinAssignsLowestEmptySeat(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	a, b := &fakeSession{}, &fakeSession{}
	r.Join(a, "alice")
	r.Join(b, "bob")
	drain(t, r)

	// Welcome is the first message a joining session receives; room-state
	// broadcasts follow it.
	aw, ok := a.messages[0].(*protocol.Welcome)
	require.True(t, ok)
	require.Equal(t, 0, aw.Seat)

	bw, ok := b.messages[0].(*protocol.Welcome)
	require.True(t, ok)
	require.Equal(t, 1, bw.Seat)
}

func TestJoinRejectsFullRoom(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	for i := 0; i < 4; i++ {
		r.Join(&fakeSession{}, "p")
	}
	extra := &fakeSession{}
	r.Join(extra, "p")
	drain(t, r)

	errMsg, ok := extra.last().(*protocol.ErrorMsg)
	require.True(t, ok)
	require.Equal(t, codeRoomFull, errMsg.Code)
}

func TestReconnectRebindsByToken(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	a := &fakeSession{}
	r.Join(a, "alice")
	drain(t, r)
	token := a.last().(*protocol.Welcome).Token

	r.Disconnect(a)
	drain(t, r)

	b := &fakeSession{}
	r.Reconnect(b, token)
	drain(t, r)

	w, ok := b.last().(*protocol.Welcome)
	require.True(t, ok)
	require.Equal(t, 0, w.Seat)
}

func TestReconnectRejectsUnknownToken(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	s := &fakeSession{}
	r.Reconnect(s, "not-a-real-token")
	drain(t, r)

	errMsg, ok := s.last().(*protocol.ErrorMsg)
	require.True(t, ok)
	require.Equal(t, codeInvalidSeat, errMsg.Code)
}

func TestReadyAutoStartsOnceAllFourReady(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	sessions := make([]*fakeSession, 4)
	for i := range sessions {
		sessions[i] = &fakeSession{}
		r.Join(sessions[i], "p")
	}
	drain(t, r)

	for _, s := range sessions {
		r.Ready(s)
	}
	drain(t, r)

	inspect(t, r, func(r *Room) {
		require.NotNil(t, r.match)
		require.NotNil(t, r.deal)
	})
}

func TestStartFillsEmptySeatsWithBotsAndRejectsNonHost(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	host := &fakeSession{}
	guest := &fakeSession{}
	r.Join(host, "alice")
	r.Join(guest, "bob")
	drain(t, r)

	r.Start(guest)
	drain(t, r)
	errMsg, ok := guest.last().(*protocol.ErrorMsg)
	require.True(t, ok)
	require.Equal(t, codeNotHost, errMsg.Code)

	r.Start(host)
	drain(t, r)

	inspect(t, r, func(r *Room) {
		require.NotNil(t, r.match)
		require.True(t, r.seats[2].IsBot)
		require.True(t, r.seats[3].IsBot)
		require.False(t, r.seats[0].IsBot)
	})
}

func TestSwitchSeatMovesOccupantToEmptySeat(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	a := &fakeSession{}
	r.Join(a, "alice")
	drain(t, r)

	r.SwitchSeat(a, 2)
	drain(t, r)

	inspect(t, r, func(r *Room) {
		require.True(t, r.seats[0].empty())
		require.Equal(t, "alice", r.seats[2].Name)
	})
}

func TestSwitchSeatRejectsOccupiedTarget(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	a, b := &fakeSession{}, &fakeSession{}
	r.Join(a, "alice")
	r.Join(b, "bob")
	drain(t, r)

	r.SwitchSeat(a, 1)
	drain(t, r)

	errMsg, ok := a.last().(*protocol.ErrorMsg)
	require.True(t, ok)
	require.Equal(t, codeSeatTaken, errMsg.Code)
}

func TestDisconnectPreMatchClearsSeat(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	a := &fakeSession{}
	r.Join(a, "alice")
	drain(t, r)

	r.Disconnect(a)
	drain(t, r)

	inspect(t, r, func(r *Room) {
		require.True(t, r.seats[0].empty())
	})
}

func TestDisconnectMidMatchRetainsSeat(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	sessions := make([]*fakeSession, 4)
	for i := range sessions {
		sessions[i] = &fakeSession{}
		r.Join(sessions[i], "p")
	}
	drain(t, r)
	for _, s := range sessions {
		r.Ready(s)
	}
	drain(t, r)

	r.Disconnect(sessions[1])
	drain(t, r)

	inspect(t, r, func(r *Room) {
		require.False(t, r.seats[1].empty())
		require.False(t, r.seats[1].Connected)
		require.NotNil(t, r.match)
	})
}

func TestForceEndOnlyHostAndResetsToWaiting(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	sessions := make([]*fakeSession, 4)
	for i := range sessions {
		sessions[i] = &fakeSession{}
		r.Join(sessions[i], "p")
	}
	drain(t, r)
	for _, s := range sessions {
		r.Ready(s)
	}
	drain(t, r)

	r.ForceEnd(sessions[1])
	drain(t, r)
	errMsg, ok := sessions[1].last().(*protocol.ErrorMsg)
	require.True(t, ok)
	require.Equal(t, codeUnauthorized, errMsg.Code)

	r.ForceEnd(sessions[0])
	drain(t, r)

	inspect(t, r, func(r *Room) {
		require.Nil(t, r.match)
		require.Nil(t, r.deal)
		require.False(t, r.seats[0].Ready)
	})
}

func TestBotTurnFiresAfterDecisionDelay(t *testing.T) {
	mock := quartz.NewMock(t)
	r := newTestRoom(t, mock)

	alice := &fakeSession{}
	bob := &fakeSession{}
	carol := &fakeSession{}
	r.Join(alice, "alice")
	r.Join(bob, "bob")
	r.Join(carol, "carol")
	drain(t, r)

	// alice vacates seat 0 so startMatch fills it with a bot: the match's
	// first deal always leads from the active team's seat 0.
	r.SwitchSeat(alice, 3)
	drain(t, r)
	r.Submit(func(r *Room) { r.startMatch() })
	drain(t, r)

	var before int
	inspect(t, r, func(r *Room) {
		require.NotNil(t, r.deal)
		require.True(t, r.seats[0].IsBot)
		before = len(r.deal.Hand(0))
	})

	mock.Advance(botDecisionDelay).MustWait(context.Background())
	drain(t, r)

	var after int
	inspect(t, r, func(r *Room) {
		after = len(r.deal.Hand(0))
	})
	require.Less(t, after, before, "bot's turn should have played a card from seat 0's hand")

	// The bot's play broadcasts a game state, then bob (seat 1, next to
	// move) gets his turn request.
	n := len(bob.messages)
	require.GreaterOrEqual(t, n, 2)
	_, ok := bob.messages[n-2].(*protocol.GameState)
	require.True(t, ok, "expected the bot's decision to broadcast an updated game state")
}

func TestChatRelaysToOtherSeatsOnly(t *testing.T) {
	r := newTestRoom(t, quartz.NewMock(t))
	a, b := &fakeSession{}, &fakeSession{}
	r.Join(a, "alice")
	r.Join(b, "bob")
	drain(t, r)

	r.Chat(a, "gg")
	drain(t, r)

	msg, ok := b.last().(*protocol.ChatMessage)
	require.True(t, ok)
	require.Equal(t, "alice", msg.Sender)
	require.Equal(t, "gg", msg.Text)

	for _, m := range a.messages {
		if _, ok := m.(*protocol.ChatMessage); ok {
			t.Fatal("sender should not receive its own chat message")
		}
	}
}
