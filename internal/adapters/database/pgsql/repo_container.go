package pgsql

import (
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  newPgxTransactionRepository(dbPool),
		SalaryRepo:       newPgxSalaryRepository(dbPool),
		CounterpartyRepo: newPgxCounterpartyRepository(dbPool),
		RenewalRepo:      newPgxRenewalRepository(dbPool),
	}
}
