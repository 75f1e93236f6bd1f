package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
)

// NewRepositoryProvider combines the remote ledger with the local stores.
// Without a pool, posting attempts are not persisted.
func NewRepositoryProvider(dbPool *pgxpool.Pool, ledger portsrepo.LedgerRepositoryFacade) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{Ledger: ledger}
	if dbPool != nil {
		provider.PostingAudit = newPgxPostingAuditRepository(dbPool)
	}
	return provider
}
