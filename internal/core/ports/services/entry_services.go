package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
)

// EntryReaderSvc defines read operations over persisted ledger entries
type EntryReaderSvc interface {
	// GetEntryByID retrieves a single ledger entry.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntriesForView retrieves the joined ledger view rows.
	ListEntriesForView(ctx context.Context) ([]domain.EntryViewRow, error)
}

// EntryMaintenanceSvc defines the metadata-only maintenance operations.
// Entries are never amount-edited after posting; they may only have their
// date corrected or be removed wholesale with their source document.
type EntryMaintenanceSvc interface {
	// RemoveBySourceDocument cascade-deletes all entries referencing a source
	// document and returns the number removed.
	RemoveBySourceDocument(ctx context.Context, sourceDocumentID string, actingUserID string) (int64, error)

	// CorrectEntryDates bulk-updates the entry date on matching entries,
	// leaving amounts, currency and accounts untouched.
	CorrectEntryDates(ctx context.Context, req dto.CorrectEntryDatesRequest, newDate time.Time, actingUserID string) (int64, error)
}

// EntrySvcFacade combines all entry-related service interfaces
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryMaintenanceSvc
}
