package services

import (
	"github.com/SanTiwari07/AgroChain-sub001/internal/core/ledger"
	portsrepo "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/repositories"
	portssvc "github.com/SanTiwari07/AgroChain-sub001/internal/core/ports/services"
	"github.com/SanTiwari07/AgroChain-sub001/internal/platform/config"
)

// NewServiceContainer wires the application services together around the
// process-wide ledger registry.
func NewServiceContainer(cfg *config.Config, registry *ledger.Ledger, userRepo portsrepo.UserRepository, archive portsrepo.ArchiveRepository) *portssvc.ServiceContainer {
	ledgerSvc := NewLedgerService(registry, archive)
	return &portssvc.ServiceContainer{
		Ledger:       ledgerSvc,
		Verification: NewVerificationService(ledgerSvc),
		User:         NewUserService(userRepo),
		Token:        NewTokenService(cfg),
	}
}
