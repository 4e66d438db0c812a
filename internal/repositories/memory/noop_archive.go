package memory

import (
	"context"

	"github.com/SanTiwari07/AgroChain-sub001/internal/core/domain"
	portsrepo "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/repositories"
)

// NoopArchiveRepository discards archive writes. Used when the Postgres
// custody archive is disabled.
type NoopArchiveRepository struct{}

// NewNoopArchiveRepository creates a no-op archiver.
func NewNoopArchiveRepository() *NoopArchiveRepository {
	return &NoopArchiveRepository{}
}

var _ portsrepo.ArchiveRepository = (*NoopArchiveRepository)(nil)

// ArchiveEvent implements portsrepo.ArchiveRepository.
func (r *NoopArchiveRepository) ArchiveEvent(ctx context.Context, product domain.Product, event domain.TraceEvent) error {
	return nil
}
