package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
)

var (
	ErrSameAccounts = fmt.Errorf("%w: debit and credit accounts must differ", apperrors.ErrValidation)
)

// journalService provides reference-data operations for posting journals.
// Journals are looked up by the posting engine but never mutated by it.
type journalService struct {
	journalRepo portsrepo.JournalRepositoryFacade
}

// NewJournalService creates a new JournalService.
func NewJournalService(journalRepo portsrepo.JournalRepositoryFacade) portssvc.JournalSvcFacade {
	return &journalService{journalRepo: journalRepo}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// CreateJournal persists a new journal template.
func (s *journalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	if req.DebitAccountID == req.CreditAccountID {
		return nil, ErrSameAccounts
	}

	now := time.Now().UTC()
	journal := domain.Journal{
		JournalID:       uuid.NewString(),
		Name:            req.Name,
		DebitAccountID:  req.DebitAccountID,
		CreditAccountID: req.CreditAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.SaveJournal(ctx, journal); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to save journal", slog.String("name", req.Name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	return &journal, nil
}

// GetJournalByID resolves a journal identifier to its debit/credit account pair.
func (s *journalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to get journal %s: %w", journalID, err)
	}
	return journal, nil
}

// ListJournals retrieves all posting journals.
func (s *journalService) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	journals, err := s.journalRepo.ListJournals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list journals: %w", err)
	}
	return journals, nil
}
