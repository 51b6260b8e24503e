package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgsql-backed repositories plus the external
// historical rate source into a single provider for the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rateSource portsrepo.HistoricalRateSource) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: newPgxCurrencyRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		EntryRepo:    newPgxEntryRepository(dbPool),
		AccessRepo:   newPgxAccessRepository(dbPool),
		RateSource:   rateSource,
	}
}
