package memory

import (
	"context"
	"sync"
	"time"

	"amdlingo-be/internal/entity"
	"amdlingo-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type SessionHistoryRepository struct {
	mu    sync.Mutex
	cache *cache.Cache
}

var _ contract.SessionHistoryRepository = &SessionHistoryRepository{}

// NewSessionHistoryRepository keeps each session for ttl after its last
// write; expired items are purged every 10 minutes.
func NewSessionHistoryRepository(ttl time.Duration) *SessionHistoryRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SessionHistoryRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionHistoryRepository) Create(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, found := r.cache.Get(id); found {
		return nil
	}
	r.cache.Set(id, []entity.HistoryEntry{}, cache.DefaultExpiration)
	return nil
}

func (r *SessionHistoryRepository) Append(_ context.Context, id string, entry entity.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.load(id)
	history = append(history, entry)
	r.cache.Set(id, history, cache.DefaultExpiration)
	return nil
}

func (r *SessionHistoryRepository) History(_ context.Context, id string) ([]entity.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	history := r.load(id)
	out := make([]entity.HistoryEntry, len(history))
	copy(out, history)
	return out, nil
}

func (r *SessionHistoryRepository) load(id string) []entity.HistoryEntry {
	if x, found := r.cache.Get(id); found {
		return x.([]entity.HistoryEntry)
	}
	return nil
}
