// Package memory provides in-process repository implementations. Participant
// records live for the process lifetime, matching the ledger registry's own
// lifecycle.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	portsrepo "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/repositories"
)

// UserRepository is an in-memory implementation of portsrepo.UserRepository.
type UserRepository struct {
	mu     sync.RWMutex
	byID   map[string]domain.User
	byName map[string]string // name -> userID
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:   make(map[string]domain.User),
		byName: make(map[string]string),
	}
}

var _ portsrepo.UserRepository = (*UserRepository)(nil)

// SaveUser implements portsrepo.UserRepository.
func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byName[user.Name]; taken {
		return fmt.Errorf("%w: user name %s", apperrors.ErrDuplicate, user.Name)
	}
	if _, taken := r.byID[user.UserID]; taken {
		return fmt.Errorf("%w: user ID %s", apperrors.ErrDuplicate, user.UserID)
	}
	r.byID[user.UserID] = user
	r.byName[user.Name] = user.UserID
	return nil
}

// FindUserByID implements portsrepo.UserRepository.
func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[userID]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
	}
	return &user, nil
}

// FindUserByName implements portsrepo.UserRepository.
func (r *UserRepository) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: user named %s", apperrors.ErrNotFound, name)
	}
	user := r.byID[userID]
	return &user, nil
}
