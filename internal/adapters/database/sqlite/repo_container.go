package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on one SQLite handle.
// The schema must already be migrated.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  &TransactionRepository{baseRepository{db: db, table: "transactions"}},
		SalaryRepo:       &SalaryRepository{baseRepository{db: db, table: "salaries"}},
		CounterpartyRepo: &CounterpartyRepository{baseRepository{db: db, table: "counterparties"}},
		RenewalRepo:      &RenewalRepository{baseRepository{db: db, table: "renewals"}},
	}
}
