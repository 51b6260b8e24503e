package repositories

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// JournalReader defines read operations for journal reference data
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves all posting journals.
	ListJournals(ctx context.Context) ([]domain.Journal, error)
}

// JournalWriter defines write operations for journal reference data
type JournalWriter interface {
	// SaveJournal persists a new journal (debit/credit account pairing).
	SaveJournal(ctx context.Context, journal domain.Journal) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction capabilities
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
