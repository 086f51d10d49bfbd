package game

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lox/guandan/internal/deck"
)

func newTestDeal(t *testing.T, prevFinish []Seat) *Deal {
	t.Helper()
	return NewDeal(deck.Two, prevFinish, 0, Collaborators{
		Logger: zerolog.Nop(),
		Rng:    rand.New(rand.NewSource(1)),
	})
}

func TestStartDealsTwentySevenEach(t *testing.T) {
	d := newTestDeal(t, nil)
	require.NoError(t, d.Start())
	for s := Seat(0); s < numSeats; s++ {
		require.Len(t, d.Hand(s), deck.HandSize)
	}
}

func TestFirstDealOfMatchSkipsTribute(t *testing.T) {
	d := newTestDeal(t, nil)
	require.NoError(t, d.Start())
	require.Equal(t, Playing, d.Phase)
}

func noJokerHands() [4][]deck.Card {
	return [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		1: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Five, 0)),
		3: handOf(deck.NewCard(deck.Spades, deck.Six, 0)),
	}
}

func TestSingleWinOwesOnlyLastPlace(t *testing.T) {
	// Seat 0 champion, seat 1 second (opposing team, since team = seat%2),
	// seat 2 third, seat 3 last: single win, seat 3 pays seat 0.
	d := dealWithHands([]Seat{0, 1, 2, 3}, 0, noJokerHands())
	require.Equal(t, Tribute, d.Phase)
	require.Equal(t, []Seat{3}, d.tribute.payers)
	require.Equal(t, []Seat{0}, d.tribute.receivers)
}

func TestDoubleWinOwesBothLosers(t *testing.T) {
	// Seat 0 champion, seat 2 second (same team as 0): double win.
	d := dealWithHands([]Seat{0, 2, 1, 3}, 0, noJokerHands())
	require.Equal(t, Tribute, d.Phase)
	require.ElementsMatch(t, []Seat{3, 1}, d.tribute.payers)
}

func TestPlayRejectsOutOfTurn(t *testing.T) {
	d := newTestDeal(t, nil)
	require.NoError(t, d.Start())
	leader := d.CurrentTurn()
	other := leader.Next()
	err := d.Play(other, []deck.ID{d.Hand(other)[0].ID})
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestPassOnFreeLeadRejected(t *testing.T) {
	d := newTestDeal(t, nil)
	require.NoError(t, d.Start())
	err := d.Pass(d.CurrentTurn())
	require.ErrorIs(t, err, ErrCannotPassFreeLead)
}

func TestPlayThenAllPassReopensFreeLeadWithWinner(t *testing.T) {
	d := newTestDeal(t, nil)
	require.NoError(t, d.Start())
	leader := d.CurrentTurn()
	card := d.Hand(leader)[len(d.Hand(leader))-1]
	require.NoError(t, d.Play(leader, []deck.ID{card.ID}))

	for s := leader.Next(); s != leader; s = s.Next() {
		require.NoError(t, d.Pass(s))
	}
	require.Equal(t, leader, d.CurrentTurn())
	require.Nil(t, d.LastPlay())
}

func TestDoubleWinEndsDealAsSoonAsBothPartnersAreOut(t *testing.T) {
	// Seats 0 and 2 are partners. Seat 0 leads a Three, seat 1 passes, seat
	// 2 beats it with a Four and empties its hand too: both seats of Team 0
	// are now out, so the deal must end immediately rather than waiting for
	// a third finisher.
	hands := [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		1: handOf(deck.NewCard(deck.Clubs, deck.Five, 0), deck.NewCard(deck.Clubs, deck.Six, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		3: handOf(deck.NewCard(deck.Clubs, deck.Seven, 0), deck.NewCard(deck.Clubs, deck.Eight, 0)),
	}
	d := dealWithHands(nil, 0, hands)
	require.Equal(t, Playing, d.Phase)
	require.Equal(t, Seat(0), d.CurrentTurn())

	require.NoError(t, d.Play(0, []deck.ID{d.Hand(0)[0].ID}))
	require.NoError(t, d.Pass(1))
	require.NoError(t, d.Play(2, []deck.ID{d.Hand(2)[0].ID}))

	require.Equal(t, Score, d.Phase)
	require.Equal(t, []Seat{0, 2, 1, 3}, d.Finished())
}

func TestSeatCannotPlayCardItDoesNotHold(t *testing.T) {
	d := newTestDeal(t, nil)
	require.NoError(t, d.Start())
	leader := d.CurrentTurn()
	err := d.Play(leader, []deck.ID{"bogus-id"})
	require.ErrorIs(t, err, ErrCardNotHeld)
}
