package services

import (
	"context"
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
)

// TokenSvcFacade issues and validates the access tokens that carry the
// caller identity and declared role into the ledger. The ledger treats the
// resulting (callerID, role) pair as authoritative input.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user, with the
	// user's role embedded as a claim. Returns the token and its expiry.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
