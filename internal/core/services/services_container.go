package services

import (
	"github.com/SscSPs/erp_backoffice/internal/core/ports"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backoffice/internal/core/ports/services"
	"github.com/SscSPs/erp_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, sender ports.MessageSender, options ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The directory comes first since the ledger resolves receivers through it
	container.Counterparty = NewCounterpartyService(repos.CounterpartyRepo, options...)
	container.Ledger = NewLedgerService(repos.TransactionRepo, container.Counterparty, options...)
	container.Salary = NewSalaryService(repos.SalaryRepo, repos.TransactionRepo, options...)
	container.Renewal = NewRenewalService(repos.RenewalRepo, options...)
	container.Import = NewImportService(repos, options...)
	container.Dispatch = NewDispatchService(repos, sender, cfg.DispatchTimeout, options...)

	return container
}
