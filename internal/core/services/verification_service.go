package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
)

// verificationService reconstructs chains of custody from the ledger's
// read surface. It holds no state of its own.
type verificationService struct {
	ledger portssvc.LedgerReaderSvc
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(ledger portssvc.LedgerReaderSvc) portssvc.VerificationSvcFacade {
	return &verificationService{ledger: ledger}
}

var _ portssvc.VerificationSvcFacade = (*verificationService)(nil)

// Verify walks the product's custody log in append order and extracts the
// actor, action and timestamp of every recorded step. A product counts as
// verified when its custody is reconstructable, meaning it has at least its
// registration event; an unknown product yields Verified=false with zero
// values, not an error.
func (s *verificationService) Verify(ctx context.Context, productID string) (*dto.VerifyResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	events, err := s.ledger.GetHistory(ctx, productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("Verification requested for unknown product", slog.String("product_id", productID))
			return &dto.VerifyResponse{
				ProductID:  productID,
				Verified:   false,
				TotalSteps: 0,
				Actors:     []string{},
				Actions:    []domain.TraceAction{},
				Timestamps: []time.Time{},
			}, nil
		}
		return nil, fmt.Errorf("failed to read custody log for %s: %w", productID, err)
	}

	actors := make([]string, len(events))
	actions := make([]domain.TraceAction, len(events))
	timestamps := make([]time.Time, len(events))
	for i, ev := range events {
		actors[i] = ev.ActorID
		actions[i] = ev.Action
		timestamps[i] = ev.Timestamp
	}

	return &dto.VerifyResponse{
		ProductID:  productID,
		Verified:   len(events) > 0,
		TotalSteps: len(events),
		Actors:     actors,
		Actions:    actions,
		Timestamps: timestamps,
	}, nil
}
