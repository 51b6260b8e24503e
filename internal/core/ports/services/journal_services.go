package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
)

// JournalReaderSvc defines read operations for journal reference data
type JournalReaderSvc interface {
	// GetJournalByID resolves a journal identifier to its debit/credit account pair.
	GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// ListJournals retrieves all posting journals.
	ListJournals(ctx context.Context) ([]domain.Journal, error)
}

// JournalWriterSvc defines write operations for journal reference data
type JournalWriterSvc interface {
	// CreateJournal persists a new journal template.
	CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)
}

// JournalSvcFacade combines all journal-related service interfaces
type JournalSvcFacade interface {
	JournalReaderSvc
	JournalWriterSvc
}
