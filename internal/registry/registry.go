package registry

import (
	"context"
	"math/rand"
	"sync"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lox/guandan/internal/bot"
	"github.com/lox/guandan/internal/room"
)

// Registry owns a set of rooms keyed by room ID, starting each one's actor
// loop on creation and stopping them all together on Shutdown. One Registry
// is created per server process and handed to internal/transport as its
// Registry collaborator.
type Registry struct {
	logger   zerolog.Logger
	clock    quartz.Clock
	strategy bot.Strategy

	mu     sync.RWMutex
	rooms  map[string]*room.Room
	cancel map[string]context.CancelFunc
}

// New builds an empty Registry. A nil clock defaults to the real wall
// clock; a nil strategy defaults to the reference heuristic bot — both
// overridable per-call site for tests.
func New(logger zerolog.Logger, clock quartz.Clock, strategy bot.Strategy) *Registry {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if strategy == nil {
		strategy = bot.Heuristic{}
	}
	return &Registry{
		logger:   logger.With().Str("component", "registry").Logger(),
		clock:    clock,
		strategy: strategy,
		rooms:    make(map[string]*room.Room),
		cancel:   make(map[string]context.CancelFunc),
	}
}

// JoinOrCreate implements transport.Registry. An empty or unrecognized
// roomID gets a freshly created room (the caller learns its real ID from
// the Welcome frame the room sends back); a known roomID returns the
// existing room so a Connect naming it joins the same table.
func (reg *Registry) JoinOrCreate(roomID string) *room.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if roomID != "" {
		if existing, ok := reg.rooms[roomID]; ok {
			return existing
		}
	}
	return reg.create()
}

// create allocates a new room, registers it by its own generated ID, and
// starts its actor loop. Callers must hold reg.mu.
func (reg *Registry) create() *room.Room {
	seed := rand.Int63()
	rm := room.New(reg.logger, reg.clock, rand.New(rand.NewSource(seed)), reg.strategy)

	ctx, cancel := context.WithCancel(context.Background())
	id := rm.ID.String()
	reg.rooms[id] = rm
	reg.cancel[id] = cancel

	go rm.Run(ctx)
	reg.logger.Info().Str("room_id", id).Msg("room created")
	return rm
}

// Get looks up a room by ID without creating one.
func (reg *Registry) Get(roomID string) (*room.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	rm, ok := reg.rooms[roomID]
	return rm, ok
}

// List returns the IDs of every room currently registered.
func (reg *Registry) List() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	ids := make([]string, 0, len(reg.rooms))
	for id := range reg.rooms {
		ids = append(ids, id)
	}
	return ids
}

// Remove stops a single room's actor loop and forgets it, e.g. once its
// match has concluded and nothing rejoined within an external idle policy.
func (reg *Registry) Remove(roomID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.stopLocked(roomID)
	delete(reg.rooms, roomID)
	delete(reg.cancel, roomID)
}

func (reg *Registry) stopLocked(roomID string) {
	if cancel, ok := reg.cancel[roomID]; ok {
		cancel()
	}
	if rm, ok := reg.rooms[roomID]; ok {
		rm.Stop()
	}
}

// Shutdown stops every registered room concurrently and waits for each
// actor loop to drain, bounded by ctx. Mirrors GameManager.StopAll's
// fan-out, generalized from a plain loop to an errgroup so the first
// room's stop error (or ctx's deadline) short-circuits the wait.
func (reg *Registry) Shutdown(ctx context.Context) error {
	reg.mu.Lock()
	rooms := make([]*room.Room, 0, len(reg.rooms))
	for _, rm := range reg.rooms {
		rooms = append(rooms, rm)
	}
	for id := range reg.cancel {
		reg.stopLocked(id)
	}
	reg.rooms = make(map[string]*room.Room)
	reg.cancel = make(map[string]context.CancelFunc)
	reg.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)
	for _, rm := range rooms {
		rm := rm
		g.Go(func() error {
			select {
			case <-rm.Done():
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	return g.Wait()
}
