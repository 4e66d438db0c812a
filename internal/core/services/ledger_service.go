package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/ledger"
	portsrepo "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/repositories"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
	"github.com/SanTiwari07/AgroChain-sub001/internal/middleware"
)

// ledgerService exposes the traceability ledger operations. It enforces the
// role gate, delegates the state transition to the ledger core, and mirrors
// committed events to the archive.
type ledgerService struct {
	registry *ledger.Ledger
	archive  portsrepo.ArchiveRepository
}

// NewLedgerService creates a new LedgerService around the process-wide
// registry. archive may be a no-op implementation when mirroring is
// disabled.
func NewLedgerService(registry *ledger.Ledger, archive portsrepo.ArchiveRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{
		registry: registry,
		archive:  archive,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// requireRole rejects callers whose declared role does not match the role
// the operation is gated on.
func requireRole(got, want domain.Role) error {
	if got != want {
		return fmt.Errorf("%w: operation requires role %s, caller has %s", apperrors.ErrForbidden, want, got)
	}
	return nil
}

// RegisterProduct creates a product owned by the calling producer.
// Implements portssvc.LedgerWriterSvc.
func (s *ledgerService) RegisterProduct(ctx context.Context, req dto.RegisterProductRequest, callerID string, role domain.Role) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requireRole(role, domain.RoleProducer); err != nil {
		logger.Warn("Role check failed for RegisterProduct", slog.String("caller_id", callerID), slog.String("role", string(role)))
		return nil, err
	}

	receipt, event, err := s.registry.Register(ctx, ledger.RegisterParams{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		BasePrice:   req.BasePrice,
		HarvestDate: req.HarvestDate,
		Quality:     req.Quality,
		Location:    req.Location,
	}, callerID)
	if err != nil {
		return nil, err
	}

	s.archiveCommitted(ctx, req.ProductID, *event)

	logger.Info("Product registered",
		slog.String("product_id", req.ProductID),
		slog.Uint64("sequence", receipt.Sequence),
	)
	return &receipt, nil
}

// AdvanceAsIntermediary moves a product into transit on behalf of the
// calling intermediary. Implements portssvc.LedgerWriterSvc.
func (s *ledgerService) AdvanceAsIntermediary(ctx context.Context, productID string, req dto.AdvanceRequest, callerID string, role domain.Role) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requireRole(role, domain.RoleIntermediary); err != nil {
		logger.Warn("Role check failed for AdvanceAsIntermediary", slog.String("caller_id", callerID), slog.String("role", string(role)))
		return nil, err
	}

	receipt, event, err := s.registry.AdvanceAsIntermediary(ctx, productID, req.AddedAmount, req.Details, callerID)
	if err != nil {
		return nil, err
	}

	s.archiveCommitted(ctx, productID, *event)

	logger.Info("Product advanced by intermediary",
		slog.String("product_id", productID),
		slog.Uint64("sequence", receipt.Sequence),
	)
	return &receipt, nil
}

// AdvanceAsSeller makes a product available on behalf of the calling seller.
// Implements portssvc.LedgerWriterSvc.
func (s *ledgerService) AdvanceAsSeller(ctx context.Context, productID string, req dto.AdvanceRequest, callerID string, role domain.Role) (*domain.Receipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := requireRole(role, domain.RoleSeller); err != nil {
		logger.Warn("Role check failed for AdvanceAsSeller", slog.String("caller_id", callerID), slog.String("role", string(role)))
		return nil, err
	}

	receipt, event, err := s.registry.AdvanceAsSeller(ctx, productID, req.AddedAmount, req.Details, callerID)
	if err != nil {
		return nil, err
	}

	s.archiveCommitted(ctx, productID, *event)

	logger.Info("Product advanced by seller",
		slog.String("product_id", productID),
		slog.Uint64("sequence", receipt.Sequence),
	)
	return &receipt, nil
}

// archiveCommitted mirrors an already committed event to the archive. The
// mutation has succeeded by this point, so archive failures are logged and
// swallowed; they must not fail the operation or touch ledger state.
func (s *ledgerService) archiveCommitted(ctx context.Context, productID string, event domain.TraceEvent) {
	if s.archive == nil {
		return
	}
	product, err := s.registry.GetProduct(ctx, productID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to snapshot product for archive", slog.String("product_id", productID), slog.String("error", err.Error()))
		return
	}
	if err := s.archive.ArchiveEvent(ctx, *product, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to archive trace event", slog.String("product_id", productID), slog.Uint64("sequence", event.Sequence), slog.String("error", err.Error()))
	}
}

// GetProduct implements portssvc.LedgerReaderSvc.
func (s *ledgerService) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	return s.registry.GetProduct(ctx, productID)
}

// GetHistory implements portssvc.LedgerReaderSvc.
func (s *ledgerService) GetHistory(ctx context.Context, productID string) ([]domain.TraceEvent, error) {
	return s.registry.GetHistory(ctx, productID)
}

// ListProductIDs implements portssvc.LedgerReaderSvc.
func (s *ledgerService) ListProductIDs(ctx context.Context) []string {
	return s.registry.ListProductIDs(ctx)
}

// GetStats implements portssvc.LedgerReaderSvc.
func (s *ledgerService) GetStats(ctx context.Context) domain.LedgerStats {
	return s.registry.Stats(ctx)
}
