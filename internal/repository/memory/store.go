// Package memory implements the in-memory snapshot store holding the current users dataset.
package memory

import (
	"sync"
	"sync/atomic"

	"users-insights/internal/entities"

	"go.uber.org/zap"
)

// generation is one immutable dataset installed in the store.
//
// refs counts the store's own reference plus one per acquired Snapshot. Once it
// drops to zero the generation is retired for good: tryAcquire never revives it.
type generation struct {
	id        uint64
	users     []entities.User
	refs      atomic.Int64
	onReclaim func(id uint64, users int)
}

func newGeneration(id uint64, users []entities.User, onReclaim func(uint64, int)) *generation {
	if users == nil {
		users = []entities.User{}
	}
	g := &generation{id: id, users: users, onReclaim: onReclaim}
	g.refs.Store(1)
	return g
}

func (g *generation) tryAcquire() bool {
	for {
		n := g.refs.Load()
		if n <= 0 {
			return false
		}
		if g.refs.CompareAndSwap(n, n+1) {
			return true
		}
	}
}

func (g *generation) release() {
	if g.refs.Add(-1) != 0 {
		return
	}
	n := len(g.users)
	g.users = nil
	if g.onReclaim != nil {
		g.onReclaim(g.id, n)
	}
}

// Store holds the current dataset behind an atomically replaceable reference.
// Readers never block and are never blocked; writers are serialized among themselves.
type Store struct {
	current atomic.Pointer[generation]
	seq     atomic.Uint64
	live    atomic.Int64

	// wmu orders swaps and install hooks so the last hook call describes the current generation.
	wmu sync.Mutex

	log       *zap.SugaredLogger
	onInstall func(id uint64, users int)
	onReclaim func(id uint64, users int)
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = log }
}

// WithInstallHook registers a callback fired for every installed generation, in swap order.
func WithInstallHook(fn func(id uint64, users int)) Option {
	return func(s *Store) { s.onInstall = fn }
}

// WithReclaimHook registers a callback fired exactly once per generation when it is reclaimed.
func WithReclaimHook(fn func(id uint64, users int)) Option {
	return func(s *Store) { s.onReclaim = fn }
}

// NewStore returns a store holding an empty dataset as generation 0.
func NewStore(opts ...Option) *Store {
	s := &Store{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(s)
	}
	s.live.Store(1)
	s.current.Store(newGeneration(0, nil, s.reclaimed))
	return s
}

func (s *Store) reclaimed(id uint64, users int) {
	s.live.Add(-1)
	s.log.Debugw("generation reclaimed", "generation", id, "users", users)
	if s.onReclaim != nil {
		s.onReclaim(id, users)
	}
}

// Replace installs users as the current dataset and returns the id of the generation it displaced.
// The store takes ownership of the slice; callers must not modify it afterwards.
// The displaced generation is reclaimed once its last reader releases it.
func (s *Store) Replace(users []entities.User) uint64 {
	n := len(users)
	g := newGeneration(0, users, s.reclaimed)

	s.wmu.Lock()
	id := s.seq.Add(1)
	g.id = id
	s.live.Add(1)
	old := s.current.Swap(g)
	if s.onInstall != nil {
		s.onInstall(id, n)
	}
	s.wmu.Unlock()

	s.log.Debugw("generation installed", "generation", id, "previous", old.id, "users", n)
	old.release()

	return old.id
}

// Acquire returns a handle on the current dataset. The handle stays valid until Release
// regardless of concurrent Replace calls.
func (s *Store) Acquire() *Snapshot {
	for {
		g := s.current.Load()
		if g.tryAcquire() {
			return &Snapshot{g: g}
		}
		// g was displaced and drained between Load and tryAcquire; the new one is already current.
	}
}

// Current returns the id of the current generation.
func (s *Store) Current() uint64 {
	return s.current.Load().id
}

// Live returns how many generations have not been reclaimed yet.
func (s *Store) Live() int64 {
	return s.live.Load()
}

// Close drops the store's reference on the current dataset, leaving an empty one in place.
func (s *Store) Close() {
	s.Replace(nil)
}

// Snapshot is an immutably shared view of one generation.
type Snapshot struct {
	g        *generation
	released atomic.Bool
}

// Users returns the dataset. The slice and everything it references must not be modified,
// and must not be used after Release.
func (s *Snapshot) Users() []entities.User {
	return s.g.users
}

// Len returns the number of users in the dataset.
func (s *Snapshot) Len() int {
	return len(s.g.users)
}

// Generation returns the id of the viewed generation.
func (s *Snapshot) Generation() uint64 {
	return s.g.id
}

// Release gives the generation back. Extra calls are no-ops.
func (s *Snapshot) Release() {
	if s.released.CompareAndSwap(false, true) {
		s.g.release()
	}
}
