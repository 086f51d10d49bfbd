package rules

import (
	"testing"

	"github.com/lox/guandan/internal/deck"
	"github.com/stretchr/testify/require"
)

func c(suit deck.Suit, rank deck.Rank, copy int) deck.Card {
	return deck.NewCard(suit, rank, copy)
}

func TestClassifySingle(t *testing.T) {
	cl, err := Classify([]deck.Card{c(deck.Spades, deck.Seven, 0)}, deck.Two)
	require.NoError(t, err)
	require.Equal(t, Single, cl.Type)
	require.Equal(t, 7, cl.Value)
}

func TestClassifyPairWithWildAbsorption(t *testing.T) {
	// Level is Four; a natural King pairs with the Hearts-Four wild.
	cards := []deck.Card{c(deck.Spades, deck.King, 0), c(deck.Hearts, deck.Four, 0)}
	cl, err := Classify(cards, deck.Four)
	require.NoError(t, err)
	require.Equal(t, Pair, cl.Type)
	require.Equal(t, 13, cl.Value)
}

func TestWildCannotSubstituteForJoker(t *testing.T) {
	cards := []deck.Card{c(deck.JokerSuit, deck.SmallJoker, 0), c(deck.Hearts, deck.Four, 0)}
	_, err := Classify(cards, deck.Four)
	require.ErrorIs(t, err, ErrNotALegalHand)
}

func TestClassifyTripsWithWildPool(t *testing.T) {
	// Two wilds (both Hearts-Four copies) plus a natural Four make trips.
	cards := []deck.Card{
		c(deck.Spades, deck.Four, 0),
		c(deck.Hearts, deck.Four, 0),
		c(deck.Hearts, deck.Four, 1),
	}
	cl, err := Classify(cards, deck.Four)
	require.NoError(t, err)
	require.Equal(t, Trips, cl.Type)
	require.Equal(t, 19, cl.Value)
}

func TestAceLowStraightValueFive(t *testing.T) {
	cards := []deck.Card{
		c(deck.Spades, deck.Two, 0),
		c(deck.Clubs, deck.Three, 0),
		c(deck.Diamonds, deck.Four, 0),
		c(deck.Hearts, deck.Five, 0),
		c(deck.Spades, deck.Ace, 0),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, Straight, cl.Type)
	require.Equal(t, 5, cl.Value)
}

func TestStraightFlush(t *testing.T) {
	cards := []deck.Card{
		c(deck.Spades, deck.Three, 0),
		c(deck.Spades, deck.Four, 0),
		c(deck.Spades, deck.Five, 0),
		c(deck.Spades, deck.Six, 0),
		c(deck.Spades, deck.Seven, 0),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, StraightFlush, cl.Type)
	require.Equal(t, 7, cl.Value)
}

func TestFiveCardDegenerateBombNotTripsWithPair(t *testing.T) {
	// Four natural Sevens plus a wild: collapses to a 5-bomb, not TWP.
	cards := []deck.Card{
		c(deck.Spades, deck.Seven, 0),
		c(deck.Spades, deck.Seven, 1),
		c(deck.Clubs, deck.Seven, 0),
		c(deck.Clubs, deck.Seven, 1),
		c(deck.Hearts, deck.Four, 0),
	}
	cl, err := Classify(cards, deck.Four)
	require.NoError(t, err)
	require.Equal(t, Bomb, cl.Type)
	require.Equal(t, 5, cl.BombCount)
}

func TestTripsWithPair(t *testing.T) {
	cards := []deck.Card{
		c(deck.Spades, deck.Nine, 0),
		c(deck.Clubs, deck.Nine, 0),
		c(deck.Diamonds, deck.Nine, 0),
		c(deck.Spades, deck.King, 0),
		c(deck.Clubs, deck.King, 0),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, TripsWithPair, cl.Type)
	require.Equal(t, 9, cl.Value)
}

func TestTube(t *testing.T) {
	cards := []deck.Card{
		c(deck.Spades, deck.Three, 0), c(deck.Clubs, deck.Three, 0),
		c(deck.Spades, deck.Four, 0), c(deck.Clubs, deck.Four, 0),
		c(deck.Spades, deck.Five, 0), c(deck.Clubs, deck.Five, 0),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, Tube, cl.Type)
}

func TestPlate(t *testing.T) {
	cards := []deck.Card{
		c(deck.Spades, deck.Seven, 0), c(deck.Clubs, deck.Seven, 0), c(deck.Diamonds, deck.Seven, 0),
		c(deck.Spades, deck.Eight, 0), c(deck.Clubs, deck.Eight, 0), c(deck.Diamonds, deck.Eight, 0),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, Plate, cl.Type)
}

func TestFourKings(t *testing.T) {
	cards := []deck.Card{
		c(deck.JokerSuit, deck.SmallJoker, 0), c(deck.JokerSuit, deck.SmallJoker, 1),
		c(deck.JokerSuit, deck.BigJoker, 0), c(deck.JokerSuit, deck.BigJoker, 1),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, FourKings, cl.Type)
}

func TestBombSizes(t *testing.T) {
	cards := []deck.Card{
		c(deck.Spades, deck.Five, 0), c(deck.Clubs, deck.Five, 0),
		c(deck.Diamonds, deck.Five, 0), c(deck.Hearts, deck.Five, 1),
	}
	cl, err := Classify(cards, deck.Two)
	require.NoError(t, err)
	require.Equal(t, Bomb, cl.Type)
	require.Equal(t, 4, cl.BombCount)
}

func TestClassifierDeterministic(t *testing.T) {
	cards := []deck.Card{c(deck.Spades, deck.Seven, 0), c(deck.Clubs, deck.Seven, 0)}
	a, err1 := Classify(cards, deck.Two)
	b, err2 := Classify(cards, deck.Two)
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, a, b)
}

func TestInvalidHandRejected(t *testing.T) {
	cards := []deck.Card{c(deck.Spades, deck.Seven, 0), c(deck.Clubs, deck.Nine, 0)}
	_, err := Classify(cards, deck.Two)
	require.ErrorIs(t, err, ErrNotALegalHand)
}
