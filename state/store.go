package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// Store keeps sessions in memory. Idle sessions expire after the TTL and the
// least recently used ones are evicted beyond capacity.
type Store struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *State]
}

func NewStore(capacity int, ttl time.Duration) *Store {
	onEvict := func(id string, _ *State) {
		zap.L().Debug("session evicted", zap.String("session_id", id))
	}
	return &Store{cache: expirable.NewLRU[string, *State](capacity, onEvict, ttl)}
}

// Get returns the session for id, creating it when id is empty or unknown.
// Every hit re-adds the entry, which restarts its TTL. The second result
// reports whether a new session was created.
func (st *Store) Get(id string) (*State, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if id != "" {
		if s, ok := st.cache.Get(id); ok {
			st.cache.Add(id, s)
			return s, false
		}
	}
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	s := New(id)
	st.cache.Add(id, s)
	return s, true
}

// Lookup returns an existing session without creating one.
func (st *Store) Lookup(id string) (*State, bool) {
	return st.cache.Get(id)
}

func (st *Store) Len() int {
	return st.cache.Len()
}
