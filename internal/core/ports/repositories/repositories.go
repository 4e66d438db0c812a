package repositories

import (
	"context"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// SaveUser persists a new user. Returns ErrDuplicate if the name is taken.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID. Returns ErrNotFound if absent.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByName retrieves a user by login name. Returns ErrNotFound if absent.
	FindUserByName(ctx context.Context, name string) (*domain.User, error)
}

// ArchiveRepository mirrors committed custody events to durable storage.
// The ledger core itself performs no I/O; the submission layer invokes the
// archiver after a mutation has committed, so archive failures can never
// roll back or corrupt ledger state.
type ArchiveRepository interface {
	// ArchiveEvent stores the committed trace event together with the
	// product snapshot taken at commit time.
	ArchiveEvent(ctx context.Context, product domain.Product, event domain.TraceEvent) error
}
