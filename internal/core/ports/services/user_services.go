package services

import (
	"context"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
)

// UserSvcFacade defines user onboarding and lookup operations.
type UserSvcFacade interface {
	// CreateUser registers a new participant with a declared role.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// AuthenticateUser checks name/password credentials and returns the user.
	AuthenticateUser(ctx context.Context, name, password string) (*domain.User, error)
}
