// Package pgsql implements the optional Postgres custody archive: a durable
// mirror of committed ledger state, written after commit by the submission
// layer. The in-memory ledger remains the source of truth for the process.
package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	portsrepo "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/repositories"
)

// PgxArchiveRepository persists product snapshots and trace events.
type PgxArchiveRepository struct {
	pool *pgxpool.Pool
}

// NewArchiveRepository creates a new archive repository on the given pool.
func NewArchiveRepository(pool *pgxpool.Pool) *PgxArchiveRepository {
	return &PgxArchiveRepository{pool: pool}
}

var _ portsrepo.ArchiveRepository = (*PgxArchiveRepository)(nil)

// ArchiveEvent upserts the product snapshot and appends the trace event in
// a single database transaction, so the archive never holds an event
// without the snapshot it belongs to.
func (r *PgxArchiveRepository) ArchiveEvent(ctx context.Context, product domain.Product, event domain.TraceEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback(ctx) // No-op after a successful commit

	productQuery := `
		INSERT INTO products (
			product_id, name, quantity, harvest_date, quality, location,
			base_price, current_price, status, producer_id, intermediary_id,
			seller_id, registered_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (product_id) DO UPDATE SET
			current_price   = EXCLUDED.current_price,
			status          = EXCLUDED.status,
			intermediary_id = EXCLUDED.intermediary_id,
			seller_id       = EXCLUDED.seller_id;
	`
	_, err = tx.Exec(ctx, productQuery,
		product.ProductID,
		product.Name,
		product.Quantity,
		product.HarvestDate,
		product.Quality,
		product.Location,
		product.BasePrice,
		product.CurrentPrice,
		product.Status,
		product.ProducerID,
		product.IntermediaryID,
		product.SellerID,
		product.RegisteredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert product snapshot %s: %w", product.ProductID, err)
	}

	eventQuery := `
		INSERT INTO trace_events (sequence, product_id, actor_id, action, price_after, details, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (sequence) DO NOTHING;
	`
	_, err = tx.Exec(ctx, eventQuery,
		event.Sequence,
		event.ProductID,
		event.ActorID,
		event.Action,
		event.PriceAfter,
		event.Details,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trace event %d: %w", event.Sequence, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit archive transaction: %w", err)
	}
	return nil
}
