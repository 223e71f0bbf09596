package firestore

import (
	"cloud.google.com/go/firestore"
	portsrepo "github.com/SscSPs/erp_backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every repository on one Firestore client.
func NewRepositoryProvider(client *firestore.Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo:  &TransactionRepository{baseRepository{client: client, collection: transactionsCollection}},
		SalaryRepo:       &SalaryRepository{baseRepository{client: client, collection: salariesCollection}},
		CounterpartyRepo: &CounterpartyRepository{baseRepository{client: client, collection: counterpartiesCollection}},
		RenewalRepo:      &RenewalRepository{baseRepository{client: client, collection: renewalsCollection}},
	}
}
