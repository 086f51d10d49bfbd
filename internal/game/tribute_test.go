package game

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lox/guandan/internal/deck"
)

// dealWithHands builds a deal past the Dealing phase using explicit,
// deterministic hands instead of a real shuffle, so tribute-resolution
// tests aren't at the mercy of where the shuffle happened to place the
// jokers.
func dealWithHands(prevFinish []Seat, activeTeam int, hands [4][]deck.Card) *Deal {
	d := NewDeal(deck.Two, prevFinish, activeTeam, Collaborators{Logger: zerolog.Nop()})
	d.Phase = Dealing
	d.hands = hands
	d.enterPostDeal()
	return d
}

func handOf(cards ...deck.Card) []deck.Card {
	return deck.SortDescending(cards, deck.Two)
}

func TestDoubleWinTributeLeaderIsLargestCardPayer(t *testing.T) {
	// finish = [champion 0, second 2, third 1, last 3]: double win, payers
	// are last (3) and third (1). Give seat 3 an Ace (higher) and seat 1 a
	// King (lower), so seat 3 should lead after tribute resolves.
	hands := [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		1: handOf(deck.NewCard(deck.Clubs, deck.King, 0), deck.NewCard(deck.Spades, deck.Five, 0)),
		3: handOf(deck.NewCard(deck.Clubs, deck.Ace, 0), deck.NewCard(deck.Spades, deck.Six, 0)),
	}
	d := dealWithHands([]Seat{0, 2, 1, 3}, 0, hands)
	require.Equal(t, Tribute, d.Phase)
	require.ElementsMatch(t, []Seat{3, 1}, d.tribute.payers)

	require.NoError(t, d.PayTribute(3, deck.NewCard(deck.Clubs, deck.Ace, 0).ID))
	require.NoError(t, d.PayTribute(1, deck.NewCard(deck.Clubs, deck.King, 0).ID))
	require.Equal(t, ReturnTribute, d.Phase)

	require.NoError(t, d.ReturnTribute(0, 3, d.hands[0][len(d.hands[0])-1].ID))
	require.NoError(t, d.ReturnTribute(2, 1, d.hands[2][len(d.hands[2])-1].ID))

	require.Equal(t, Playing, d.Phase)
	require.Equal(t, Seat(3), d.CurrentTurn())
}

func TestSingleWinTributeLeaderIsThePayer(t *testing.T) {
	hands := [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		1: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Five, 0)),
		3: handOf(deck.NewCard(deck.Clubs, deck.Ace, 0), deck.NewCard(deck.Spades, deck.Six, 0)),
	}
	d := dealWithHands([]Seat{0, 1, 2, 3}, 0, hands)
	require.Equal(t, Tribute, d.Phase)
	require.Equal(t, []Seat{3}, d.tribute.payers)

	require.NoError(t, d.PayTribute(3, deck.NewCard(deck.Clubs, deck.Ace, 0).ID))
	require.Equal(t, ReturnTribute, d.Phase)

	require.NoError(t, d.ReturnTribute(0, 3, d.hands[0][0].ID))

	require.Equal(t, Playing, d.Phase)
	require.Equal(t, Seat(3), d.CurrentTurn())
}

func TestResistedTributeSkipsStraightToPlaying(t *testing.T) {
	hands := [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		1: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Five, 0)),
		3: handOf(deck.NewCard(deck.JokerSuit, deck.SmallJoker, 0), deck.NewCard(deck.JokerSuit, deck.BigJoker, 0)),
	}
	d := dealWithHands([]Seat{0, 1, 2, 3}, 0, hands)
	require.Equal(t, Playing, d.Phase)
	require.True(t, d.tribute.resisted)
	require.Equal(t, Seat(3), d.CurrentTurn())
}

func TestTiedFinishSkipsTributeEntirely(t *testing.T) {
	// finish = [champion 0, second 1, third 3, last 2]: seats 0 and 2 are
	// partners, so the champion's team also took last place. No tribute.
	hands := [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		1: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Five, 0)),
		3: handOf(deck.NewCard(deck.Clubs, deck.Ace, 0), deck.NewCard(deck.Spades, deck.Six, 0)),
	}
	d := dealWithHands([]Seat{0, 1, 3, 2}, 0, hands)
	require.Equal(t, Playing, d.Phase)
	require.False(t, d.tribute.owed())
	require.Equal(t, Seat(2), d.CurrentTurn())
}

func TestFirstDealLeaderIsActiveTeamSeatZero(t *testing.T) {
	hands := [4][]deck.Card{
		0: handOf(deck.NewCard(deck.Spades, deck.Three, 0)),
		1: handOf(deck.NewCard(deck.Spades, deck.Four, 0)),
		2: handOf(deck.NewCard(deck.Spades, deck.Five, 0)),
		3: handOf(deck.NewCard(deck.Spades, deck.Six, 0)),
	}
	d := dealWithHands(nil, 1, hands)
	require.Equal(t, Playing, d.Phase)
	require.Equal(t, Seat(1), d.CurrentTurn())
}
