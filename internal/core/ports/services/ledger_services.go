package services

import (
	"context"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/SanTiwari07/AgroChain-sub001/internal/dto"
)

// LedgerReaderSvc defines the read-only ledger operations. They never
// mutate state and never fail on valid input shape; an unknown identifier
// surfaces as ErrNotFound.
type LedgerReaderSvc interface {
	// GetProduct returns the current snapshot of a product.
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)

	// GetHistory returns the full custody log of a product in append order.
	GetHistory(ctx context.Context, productID string) ([]domain.TraceEvent, error)

	// ListProductIDs returns all product identifiers in insertion order.
	ListProductIDs(ctx context.Context) []string

	// GetStats returns the ledger-wide running aggregates.
	GetStats(ctx context.Context) domain.LedgerStats
}

// LedgerWriterSvc defines the role-gated mutating ledger operations. Each
// takes the authenticated caller identity and declared role; a role that
// does not match the operation fails with ErrForbidden.
type LedgerWriterSvc interface {
	// RegisterProduct creates a product and its registration event.
	RegisterProduct(ctx context.Context, req dto.RegisterProductRequest, callerID string, role domain.Role) (*domain.Receipt, error)

	// AdvanceAsIntermediary moves a REGISTERED product to IN_TRANSIT.
	AdvanceAsIntermediary(ctx context.Context, productID string, req dto.AdvanceRequest, callerID string, role domain.Role) (*domain.Receipt, error)

	// AdvanceAsSeller moves an IN_TRANSIT product to AVAILABLE.
	AdvanceAsSeller(ctx context.Context, productID string, req dto.AdvanceRequest, callerID string, role domain.Role) (*domain.Receipt, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
