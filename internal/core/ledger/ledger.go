// Package ledger holds the process-wide product traceability registry: the
// mapping from product identifiers to products, the append-only per-product
// custody log, and the ledger-wide running aggregates.
//
// Mutations on the same product are serialized by a per-product mutex, so
// concurrent advance attempts on one identifier cannot both succeed.
// Operations on different products proceed in parallel; the registry-level
// RWMutex is held only for map lookup and insert. A failed operation leaves
// the ledger unchanged.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SanTiwari07/AgroChain-sub001/internal/apperrors"
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// entry pairs a product with its custody log. entry.mu serializes every
// mutation and snapshot of this product.
type entry struct {
	mu      sync.Mutex
	product domain.Product
	history []domain.TraceEvent
}

// Ledger is the in-memory registry. Create one per process with New; it
// lives for the process lifetime.
type Ledger struct {
	mu       sync.RWMutex // guards products and order
	products map[string]*entry
	order    []string // product IDs in insertion order

	statsMu sync.Mutex
	stats   domain.LedgerStats

	seq atomic.Uint64
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		products: make(map[string]*entry),
		stats:    domain.LedgerStats{TotalValue: decimal.Zero},
	}
}

// RegisterParams carries the immutable registration fields of a product.
type RegisterParams struct {
	ProductID   string
	Name        string
	Quantity    int64
	BasePrice   decimal.Decimal
	HarvestDate string
	Quality     string
	Location    string
}

func (p RegisterParams) validate() error {
	if p.ProductID == "" {
		return fmt.Errorf("%w: product ID must not be empty", apperrors.ErrValidation)
	}
	if p.Name == "" {
		return fmt.Errorf("%w: name must not be empty", apperrors.ErrValidation)
	}
	if p.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", apperrors.ErrValidation)
	}
	if p.BasePrice.IsNegative() {
		return fmt.Errorf("%w: base price must not be negative", apperrors.ErrValidation)
	}
	if p.HarvestDate == "" {
		return fmt.Errorf("%w: harvest date must not be empty", apperrors.ErrValidation)
	}
	if p.Quality == "" {
		return fmt.Errorf("%w: quality must not be empty", apperrors.ErrValidation)
	}
	if p.Location == "" {
		return fmt.Errorf("%w: location must not be empty", apperrors.ErrValidation)
	}
	return nil
}

// Register creates a new product in REGISTERED state owned by callerID and
// appends its registration event. It fails with ErrDuplicate if the
// identifier is already taken, which also makes submission-layer retries
// safe: a retried registration is rejected instead of applied twice.
func (l *Ledger) Register(ctx context.Context, params RegisterParams, callerID string) (domain.Receipt, *domain.TraceEvent, error) {
	if err := params.validate(); err != nil {
		return domain.Receipt{}, nil, err
	}
	if callerID == "" {
		return domain.Receipt{}, nil, fmt.Errorf("%w: caller ID must not be empty", apperrors.ErrValidation)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.products[params.ProductID]; exists {
		return domain.Receipt{}, nil, fmt.Errorf("%w: product %s", apperrors.ErrDuplicate, params.ProductID)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:    params.ProductID,
		Name:         params.Name,
		Quantity:     params.Quantity,
		HarvestDate:  params.HarvestDate,
		Quality:      params.Quality,
		Location:     params.Location,
		BasePrice:    params.BasePrice,
		CurrentPrice: params.BasePrice,
		Status:       domain.Registered,
		ProducerID:   callerID,
		RegisteredAt: now,
	}
	event := domain.TraceEvent{
		Sequence:   l.seq.Add(1),
		ProductID:  params.ProductID,
		ActorID:    callerID,
		Action:     domain.ActionRegistered,
		PriceAfter: params.BasePrice,
		Details:    "registered at " + params.Location,
		Timestamp:  now,
	}

	l.products[params.ProductID] = &entry{
		product: product,
		history: []domain.TraceEvent{event},
	}
	l.order = append(l.order, params.ProductID)

	l.statsMu.Lock()
	l.stats.TotalProducts++
	l.stats.TotalTransactions++
	l.stats.TotalValue = l.stats.TotalValue.Add(params.BasePrice)
	l.stats.ActiveProducts++
	l.statsMu.Unlock()

	return domain.Receipt{Sequence: event.Sequence, Timestamp: now}, &event, nil
}

// AdvanceAsIntermediary moves a REGISTERED product to IN_TRANSIT, records
// callerID as its intermediary and adds addedCost to its current price.
func (l *Ledger) AdvanceAsIntermediary(ctx context.Context, productID string, addedCost decimal.Decimal, details string, callerID string) (domain.Receipt, *domain.TraceEvent, error) {
	return l.advance(productID, addedCost, details, callerID, domain.Registered, domain.InTransit, domain.ActionIntermediaryAdvance)
}

// AdvanceAsSeller moves an IN_TRANSIT product to AVAILABLE, records callerID
// as its seller and adds addedMargin to its current price. AVAILABLE is
// terminal, so the product also leaves the active count.
func (l *Ledger) AdvanceAsSeller(ctx context.Context, productID string, addedMargin decimal.Decimal, details string, callerID string) (domain.Receipt, *domain.TraceEvent, error) {
	return l.advance(productID, addedMargin, details, callerID, domain.InTransit, domain.Available, domain.ActionSellerAdvance)
}

// advance applies one forward step of the custody state machine under the
// product's mutex. The status check and the mutation happen in the same
// critical section, so a stale or duplicate attempt observes the already
// advanced status and is rejected with ErrInvalidState.
func (l *Ledger) advance(productID string, added decimal.Decimal, details string, callerID string, from, to domain.ProductStatus, action domain.TraceAction) (domain.Receipt, *domain.TraceEvent, error) {
	if productID == "" {
		return domain.Receipt{}, nil, fmt.Errorf("%w: product ID must not be empty", apperrors.ErrValidation)
	}
	if callerID == "" {
		return domain.Receipt{}, nil, fmt.Errorf("%w: caller ID must not be empty", apperrors.ErrValidation)
	}
	if added.IsNegative() {
		return domain.Receipt{}, nil, fmt.Errorf("%w: added amount must not be negative", apperrors.ErrValidation)
	}

	e, ok := l.lookup(productID)
	if !ok {
		return domain.Receipt{}, nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.product.Status != from {
		return domain.Receipt{}, nil, fmt.Errorf("%w: product %s is %s, expected %s", apperrors.ErrInvalidState, productID, e.product.Status, from)
	}

	now := time.Now().UTC()
	e.product.Status = to
	e.product.CurrentPrice = e.product.CurrentPrice.Add(added)
	switch action {
	case domain.ActionIntermediaryAdvance:
		e.product.IntermediaryID = &callerID
	case domain.ActionSellerAdvance:
		e.product.SellerID = &callerID
	}

	event := domain.TraceEvent{
		Sequence:   l.seq.Add(1),
		ProductID:  productID,
		ActorID:    callerID,
		Action:     action,
		PriceAfter: e.product.CurrentPrice,
		Details:    details,
		Timestamp:  now,
	}
	e.history = append(e.history, event)

	l.statsMu.Lock()
	l.stats.TotalTransactions++
	l.stats.TotalValue = l.stats.TotalValue.Add(added)
	if to == domain.Available {
		l.stats.ActiveProducts--
	}
	l.statsMu.Unlock()

	return domain.Receipt{Sequence: event.Sequence, Timestamp: now}, &event, nil
}

// GetProduct returns a snapshot of the product, or ErrNotFound.
func (l *Ledger) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	e, ok := l.lookup(productID)
	if !ok {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	e.mu.Lock()
	snapshot := e.product
	e.mu.Unlock()
	return &snapshot, nil
}

// GetHistory returns the product's custody log in append order, or
// ErrNotFound if the product was never registered. An existing product
// always has at least its registration event.
func (l *Ledger) GetHistory(ctx context.Context, productID string) ([]domain.TraceEvent, error) {
	e, ok := l.lookup(productID)
	if !ok {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	e.mu.Lock()
	history := make([]domain.TraceEvent, len(e.history))
	copy(history, e.history)
	e.mu.Unlock()
	return history, nil
}

// ListProductIDs returns every product identifier in insertion order.
func (l *Ledger) ListProductIDs(ctx context.Context) []string {
	l.mu.RLock()
	ids := make([]string, len(l.order))
	copy(ids, l.order)
	l.mu.RUnlock()
	return ids
}

// Stats returns a copy of the running aggregates. O(1), no scanning.
func (l *Ledger) Stats(ctx context.Context) domain.LedgerStats {
	l.statsMu.Lock()
	stats := l.stats
	l.statsMu.Unlock()
	return stats
}

func (l *Ledger) lookup(productID string) (*entry, bool) {
	l.mu.RLock()
	e, ok := l.products[productID]
	l.mu.RUnlock()
	return e, ok
}
