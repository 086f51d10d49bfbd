package match

import (
	"time"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"

	"github.com/lox/guandan/internal/deck"
	"github.com/lox/guandan/internal/game"
)

// GraceInterval is the pause between a deal reaching Score and the next
// deal's Start, giving players a moment to see the result.
const GraceInterval = 5 * time.Second

// Match tracks a sequence of deals for one table: each team's current
// level, which team currently holds the deal (the "active" team), and
// whether the match has concluded. It owns no transport or room state.
type Match struct {
	Levels     [2]deck.Rank
	ActiveTeam int
	Finished   bool
	Winner     int

	// consecutiveWinsAtAce[team] counts that team's unbroken run of deal
	// wins while already sitting at level Ace; it resets to 0 whenever the
	// other team wins a deal. Two in a row ends the match.
	consecutiveWinsAtAce [2]int
	dealCount            int

	logger zerolog.Logger
	clock  quartz.Clock

	// generation guards a scheduled grace timer: a timer fired after the
	// match has moved on (ForceEnd, or a newer deal already started) reads
	// a stale generation and no-ops instead of acting.
	generation int
	timer      *quartz.Timer
}

// NewMatch starts a fresh match at level Two for both teams, with team 0
// dealing first.
func NewMatch(logger zerolog.Logger, clock quartz.Clock) *Match {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Match{
		Levels:     [2]deck.Rank{deck.Two, deck.Two},
		ActiveTeam: 0,
		logger:     logger.With().Str("component", "match").Logger(),
		clock:      clock,
	}
}

// CurrentLevel is the level the next deal should be dealt at: the active
// team's level.
func (m *Match) CurrentLevel() deck.Rank {
	return m.Levels[m.ActiveTeam]
}

// levelStep returns how many ranks the winning team's level advances,
// keyed by how decisively they won: a double-down (their two seats finish
// 1st and 2nd) advances 3, a partner finishing 3rd advances 2, and a
// partner finishing last advances 1.
func levelStep(finish []game.Seat) int {
	champion := finish[0]
	partner := champion.Partner()
	switch partner {
	case finish[1]:
		return 3
	case finish[2]:
		return 2
	default:
		return 1
	}
}

func advanceLevel(level deck.Rank, step int) deck.Rank {
	v := int(level) + step
	if v > int(deck.Ace) {
		v = int(deck.Ace)
	}
	return deck.Rank(v)
}

// ApplyResult folds a concluded deal's outcome into the match: it advances
// the winning team's level (or, once at Ace, tracks consecutive wins toward
// match termination), and switches which team is active if the non-active
// team won. It returns true once the match has concluded.
func (m *Match) ApplyResult(res game.Result) bool {
	m.dealCount++
	winningTeam := res.Finish[0].Team()
	losingTeam := 1 - winningTeam
	step := levelStep(res.Finish)

	if winningTeam != m.ActiveTeam {
		m.ActiveTeam = winningTeam
	}
	m.consecutiveWinsAtAce[losingTeam] = 0

	if m.Levels[winningTeam] == deck.Ace {
		m.consecutiveWinsAtAce[winningTeam]++
		if m.consecutiveWinsAtAce[winningTeam] >= 2 {
			m.Finished = true
			m.Winner = winningTeam
			m.logger.Info().Int("team", winningTeam).Int("deals", m.dealCount).Msg("match finished")
			return true
		}
		return false
	}

	m.Levels[winningTeam] = advanceLevel(m.Levels[winningTeam], step)
	m.consecutiveWinsAtAce[winningTeam] = 0
	return false
}

// NextDeal constructs the deal that follows res, at the active team's
// current level, carrying res's finishing order for tribute computation.
func (m *Match) NextDeal(res game.Result, collab game.Collaborators) *game.Deal {
	return game.NewDeal(m.CurrentLevel(), res.Finish, m.ActiveTeam, collab)
}

// ScheduleNext arranges for fn to run after the inter-deal grace interval,
// unless the match is force-ended first. The callback is invalidated if
// ForceEnd or a later ScheduleNext call supersedes it before it fires.
func (m *Match) ScheduleNext(fn func()) {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	gen := m.generation
	m.timer = m.clock.AfterFunc(GraceInterval, func() {
		if gen != m.generation {
			return
		}
		fn()
	})
}

// ForceEnd stops any pending scheduled deal and marks the match concluded
// with no declared winner, for host-initiated early termination.
func (m *Match) ForceEnd() {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.generation++
	m.Finished = true
	m.Winner = -1
}
