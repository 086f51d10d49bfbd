package room

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lox/guandan/internal/bot"
	"github.com/lox/guandan/internal/game"
	"github.com/lox/guandan/internal/match"
)

// botDecisionDelay is the minimum pause before a bot-controlled seat's
// scheduled move fires, simulating human-paced play (spec's bot decision
// latency simulation).
const botDecisionDelay = 1200 * time.Millisecond

// Game modes a room can be set to before a match starts.
const (
	ModeNormal = "Normal"
	ModeSkill  = "Skill"
)

// Room is the single-writer actor owning one table's seats, its active
// match and deal, and bot-decision scheduling. Every exported operation
// (Join, Ready, Play, ...) enqueues a closure onto cmd; Run applies them
// one at a time, so a room's state is only ever touched from its own
// goroutine — concurrent callers are serialized without locking, mirroring
// the teacher's BotPool.Run() register/unregister actor loop generalized
// from a free-agent pool to a fixed four-seat table.
type Room struct {
	ID   uuid.UUID
	mode string

	seats [4]*Seat

	match *match.Match
	deal  *game.Deal

	strategy bot.Strategy
	clock    quartz.Clock
	rng      *rand.Rand
	logger   zerolog.Logger

	// botGeneration is bumped every time a bot turn is (re)scheduled; a
	// fired timer whose generation no longer matches, or whose captured
	// deal is no longer r.deal, is stale and no-ops. This is the
	// engine-identity token spec's cancellation model requires.
	botGeneration int

	cmd      chan func(*Room)
	done     chan struct{}
	stopOnce sync.Once
}

// New constructs an empty room with four open seats.
func New(logger zerolog.Logger, clock quartz.Clock, rng *rand.Rand, strategy bot.Strategy) *Room {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if strategy == nil {
		strategy = bot.Heuristic{}
	}
	r := &Room{
		ID:       uuid.New(),
		mode:     ModeNormal,
		strategy: strategy,
		clock:    clock,
		rng:      rng,
		logger:   logger.With().Str("component", "room").Logger(),
		cmd:      make(chan func(*Room), 64),
		done:     make(chan struct{}),
	}
	for i := range r.seats {
		r.seats[i] = &Seat{}
	}
	return r
}

// Submit enqueues fn to run on the room's actor goroutine. Safe to call
// from any goroutine: transport read pumps, scheduled timers.
func (r *Room) Submit(fn func(*Room)) {
	select {
	case r.cmd <- fn:
	case <-r.done:
	}
}

// Run processes queued commands until ctx is cancelled or Stop is called.
func (r *Room) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.done:
			return
		case fn := <-r.cmd:
			fn(r)
		}
	}
}

// Stop halts the room's actor loop.
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

// Done reports when the room has stopped.
func (r *Room) Done() <-chan struct{} {
	return r.done
}
