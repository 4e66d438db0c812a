package services

import (
	"context"
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/platform/config"
	"github.com/SanTiwari07/AgroChain-sub001/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
// It requires access to application configuration for secrets and expiry.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
// The user's role travels as a claim so the ledger's role gate can read it
// without a user lookup per request.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)

	accessToken, err := utils.GenerateJWT(user.UserID, user.Role, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return accessToken, expiryTime, nil
}
