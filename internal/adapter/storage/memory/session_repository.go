package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"subname-minter/internal/config"
	"subname-minter/internal/domain"
	"subname-minter/internal/domain/entity"
	domainRepo "subname-minter/internal/domain/repository"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.SessionRepository = (*SessionRepository)(nil)

const sessionKeyPrefix = "session_"

// SessionRepository keeps sessions in go-cache. Every read-modify-write runs under mu
// so that the busy flag and the generation counter change atomically.
type SessionRepository struct {
	mu     sync.Mutex
	cache  *cache.Cache
	logger *zap.Logger
}

// NewSessionRepository creates a session store whose entries expire after cfg.TTL of inactivity.
func NewSessionRepository(cfg config.SessionConfig, logger *zap.Logger) domainRepo.SessionRepository {
	ttl := cfg.GetTTL()
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cleanup := cfg.GetCleanupInterval()
	if cleanup <= 0 {
		cleanup = ttl
	}

	logger.Info("Initialized go-cache for sessions",
		zap.Duration("ttl", ttl),
		zap.Duration("cleanupInterval", cleanup),
	)

	return &SessionRepository{
		cache:  cache.New(ttl, cleanup),
		logger: logger.Named("MemorySessionStorage"),
	}
}

// Create stores a new session.
func (r *SessionRepository) Create(_ context.Context, session entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := sessionKeyPrefix + session.ID
	if err := r.cache.Add(key, copySession(session), cache.DefaultExpiration); err != nil {
		return fmt.Errorf("session %s already exists: %w", session.ID, err)
	}
	r.logger.Debug("Session created", zap.String("sessionId", session.ID))
	return nil
}

// Get returns a copy of the session.
func (r *SessionRepository) Get(_ context.Context, id string) (entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(id)
	if err != nil {
		return entity.Session{}, err
	}
	return copySession(s), nil
}

// TryAcquire sets the busy flag if it is clear and reports whether it did.
func (r *SessionRepository) TryAcquire(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(id)
	if err != nil {
		return false, err
	}
	if s.Busy {
		return false, nil
	}
	s.Busy = true
	s.Status = entity.StatusIdle
	s.LastOutcome = nil
	r.store(s)
	return true, nil
}

// Release clears the busy flag and records the outcome.
func (r *SessionRepository) Release(_ context.Context, id string, outcome entity.MintOutcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(id)
	if err != nil {
		return err
	}
	s.Busy = false
	s.Status = outcome.Status
	s.LastOutcome = &outcome
	r.store(s)
	return nil
}

// SetStatus records an intermediate mint status.
func (r *SessionRepository) SetStatus(_ context.Context, id string, status entity.MintStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(id)
	if err != nil {
		return err
	}
	s.Status = status
	r.store(s)
	return nil
}

// NextGeneration bumps and returns the session's request generation.
func (r *SessionRepository) NextGeneration(_ context.Context, id string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(id)
	if err != nil {
		return 0, err
	}
	s.Generation++
	r.store(s)
	return s.Generation, nil
}

// StoreSearch saves result only if its generation is still current.
func (r *SessionRepository) StoreSearch(_ context.Context, id string, result entity.SearchResult) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, err := r.load(id)
	if err != nil {
		return false, err
	}
	if result.Generation != s.Generation {
		r.logger.Debug("Dropping stale search result",
			zap.String("sessionId", id),
			zap.Uint64("resultGeneration", result.Generation),
			zap.Uint64("currentGeneration", s.Generation),
		)
		return false, nil
	}
	stored := copySearch(result)
	s.LastSearch = &stored
	r.store(s)
	return true, nil
}

// load must be called with mu held.
func (r *SessionRepository) load(id string) (entity.Session, error) {
	key := sessionKeyPrefix + id
	x, found := r.cache.Get(key)
	if !found {
		return entity.Session{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	s, ok := x.(entity.Session)
	if !ok {
		r.logger.Warn("Memory cache data type mismatch for key",
			zap.String("key", key),
			zap.String("type", fmt.Sprintf("%T", x)),
		)
		return entity.Session{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s, nil
}

// store must be called with mu held. Writing refreshes the session's expiry.
func (r *SessionRepository) store(s entity.Session) {
	r.cache.Set(sessionKeyPrefix+s.ID, s, cache.DefaultExpiration)
}

func copySession(s entity.Session) entity.Session {
	if s.LastSearch != nil {
		search := copySearch(*s.LastSearch)
		s.LastSearch = &search
	}
	if s.LastOutcome != nil {
		outcome := *s.LastOutcome
		s.LastOutcome = &outcome
	}
	return s
}

func copySearch(r entity.SearchResult) entity.SearchResult {
	r.Suggestions = append([]entity.Suggestion(nil), r.Suggestions...)
	return r
}
