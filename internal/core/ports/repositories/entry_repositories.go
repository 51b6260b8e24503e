package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// EntryDateFilter selects the entries targeted by a bulk date correction.
// At least one field must be set; an empty filter would rewrite the whole ledger.
type EntryDateFilter struct {
	JournalID        *string
	SourceDocumentID *string
	EntryDate        *time.Time
}

// IsEmpty reports whether the filter constrains nothing.
func (f EntryDateFilter) IsEmpty() bool {
	return f.JournalID == nil && f.SourceDocumentID == nil && f.EntryDate == nil
}

// EntryReader defines read operations for ledger entries
type EntryReader interface {
	// FindEntryByID retrieves a single ledger entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesForView retrieves all entries joined with account, journal and
	// source-document data, amounts normalized by the recorded rate.
	ListEntriesForView(ctx context.Context) ([]domain.EntryViewRow, error)
}

// EntryWriter defines write operations for ledger entries
type EntryWriter interface {
	// SaveEntryPair persists both legs of a posting inside a single database
	// transaction: either both rows commit or neither does.
	SaveEntryPair(ctx context.Context, debit, credit domain.JournalEntry) error

	// DeleteBySourceDocument removes every entry referencing the given source
	// document and returns the number of rows removed.
	DeleteBySourceDocument(ctx context.Context, sourceDocumentID string) (int64, error)

	// UpdateEntryDates sets the entry date on all entries matched by the filter,
	// touching nothing else but the audit stamp. Returns the number of rows updated.
	UpdateEntryDates(ctx context.Context, filter EntryDateFilter, newDate time.Time, updatedByUserID string, updatedAt time.Time) (int64, error)
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}

// EntryRepositoryWithTx extends EntryRepositoryFacade with transaction capabilities
type EntryRepositoryWithTx interface {
	EntryRepositoryFacade
	TransactionManager
}
