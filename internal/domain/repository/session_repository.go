package repository

import (
	"context"

	"subname-minter/internal/domain/entity"
)

// SessionRepository stores UI sessions. Every method is safe for concurrent use;
// the returned sessions are copies.
type SessionRepository interface {
	// Create stores a new session.
	Create(ctx context.Context, session entity.Session) error

	// Get returns a copy of the session.
	Get(ctx context.Context, id string) (entity.Session, error)

	// TryAcquire sets the busy flag if it is clear and reports whether it did.
	TryAcquire(ctx context.Context, id string) (bool, error)

	// Release clears the busy flag and records the outcome of the attempt.
	Release(ctx context.Context, id string, outcome entity.MintOutcome) error

	// SetStatus records an intermediate mint status.
	SetStatus(ctx context.Context, id string, status entity.MintStatus) error

	// NextGeneration bumps and returns the session's request generation.
	NextGeneration(ctx context.Context, id string) (uint64, error)

	// StoreSearch saves result only if result.Generation is still the current generation.
	StoreSearch(ctx context.Context, id string, result entity.SearchResult) (bool, error)
}
