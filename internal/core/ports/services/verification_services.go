package services

import (
	"context"

	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
)

// VerificationSvcFacade reconstructs a product's chain of custody and
// yields an authenticity verdict. Read-only.
type VerificationSvcFacade interface {
	// Verify walks the product's custody log in order. An unknown product
	// yields Verified=false with zero values rather than an error.
	Verify(ctx context.Context, productID string) (*dto.VerifyResponse, error)
}
