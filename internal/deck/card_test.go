package deck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogicValueLevelCardIsNineteen(t *testing.T) {
	hearts := NewCard(Hearts, Four, 0)
	spades := NewCard(Spades, Four, 0)
	require.Equal(t, 19, hearts.LogicValue(Four))
	require.Equal(t, 19, spades.LogicValue(Four))
	require.Equal(t, 4, spades.LogicValue(Five))
}

func TestWildIsHeartsLevelCardOnly(t *testing.T) {
	require.True(t, NewCard(Hearts, Four, 0).IsWild(Four))
	require.False(t, NewCard(Spades, Four, 0).IsWild(Four))
	require.False(t, NewCard(Hearts, Five, 0).IsWild(Four))
}

func TestJokerLogicValues(t *testing.T) {
	small := NewCard(JokerSuit, SmallJoker, 0)
	big := NewCard(JokerSuit, BigJoker, 0)
	require.Equal(t, 20, small.LogicValue(Two))
	require.Equal(t, 21, big.LogicValue(Two))
	require.False(t, small.IsWild(SmallJoker))
}

func TestPromoteForLevelIsIdempotent(t *testing.T) {
	cards := NewDeck().Cards()
	once := PromoteForLevel(cards, King)
	plain := make([]Card, len(once))
	for i, pc := range once {
		plain[i] = pc.Card
	}
	twice := PromoteForLevel(plain, King)
	require.Equal(t, once, twice)
}

func TestSortDescendingIsIdempotent(t *testing.T) {
	cards := NewDeck().Cards()
	once := SortDescending(cards, Two)
	twice := SortDescending(once, Two)
	require.Equal(t, once, twice)
}
