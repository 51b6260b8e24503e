package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
)

var (
	ErrEmptyDateFilter = fmt.Errorf("%w: date correction requires at least one filter field", apperrors.ErrValidation)
)

// entryService exposes reads over persisted entries and the two metadata-only
// maintenance operations (cascade delete by source document, bulk date
// correction). Amount-level edits are deliberately absent.
type entryService struct {
	entryRepo portsrepo.EntryRepositoryFacade
}

// NewEntryService creates a new EntryService.
func NewEntryService(entryRepo portsrepo.EntryRepositoryFacade) portssvc.EntrySvcFacade {
	return &entryService{entryRepo: entryRepo}
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

// GetEntryByID retrieves a single ledger entry.
func (s *entryService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntriesForView retrieves the joined ledger view rows. The access gate is
// the caller's responsibility; this service only reads.
func (s *entryService) ListEntriesForView(ctx context.Context) ([]domain.EntryViewRow, error) {
	rows, err := s.entryRepo.ListEntriesForView(ctx)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list entries for view", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return rows, nil
}

// RemoveBySourceDocument cascade-deletes every entry referencing the given
// source document. Entries leave the ledger only this way or not at all.
func (s *entryService) RemoveBySourceDocument(ctx context.Context, sourceDocumentID string, actingUserID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if sourceDocumentID == "" {
		return 0, fmt.Errorf("%w: source document id is required", apperrors.ErrValidation)
	}

	removed, err := s.entryRepo.DeleteBySourceDocument(ctx, sourceDocumentID)
	if err != nil {
		logger.Error("Cascade delete failed", slog.String("source_document_id", sourceDocumentID), slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to delete entries for source document %s: %w", sourceDocumentID, err)
	}

	logger.Info("Entries removed by source document",
		slog.String("source_document_id", sourceDocumentID),
		slog.String("acting_user_id", actingUserID),
		slog.Int64("removed", removed),
	)
	return removed, nil
}

// CorrectEntryDates bulk-updates the date field of entries matched by the
// request filter. Amounts, currency and account references never change here.
func (s *entryService) CorrectEntryDates(ctx context.Context, req dto.CorrectEntryDatesRequest, newDate time.Time, actingUserID string) (int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter, err := toEntryDateFilter(req)
	if err != nil {
		return 0, err
	}
	if filter.IsEmpty() {
		return 0, ErrEmptyDateFilter
	}

	now := time.Now().UTC()
	updated, err := s.entryRepo.UpdateEntryDates(ctx, filter, newDate, actingUserID, now)
	if err != nil {
		logger.Error("Bulk date correction failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to correct entry dates: %w", err)
	}

	logger.Info("Entry dates corrected",
		slog.String("new_date", newDate.Format(domain.RateDateLayout)),
		slog.String("acting_user_id", actingUserID),
		slog.Int64("updated", updated),
	)
	return updated, nil
}

func toEntryDateFilter(req dto.CorrectEntryDatesRequest) (portsrepo.EntryDateFilter, error) {
	filter := portsrepo.EntryDateFilter{
		JournalID:        req.JournalID,
		SourceDocumentID: req.SourceDocumentID,
	}
	if req.EntryDate != nil {
		parsed, err := time.ParseInLocation(domain.RateDateLayout, *req.EntryDate, time.UTC)
		if err != nil {
			return portsrepo.EntryDateFilter{}, fmt.Errorf("%w: entryDate must use %s format", apperrors.ErrValidation, domain.RateDateLayout)
		}
		filter.EntryDate = &parsed
	}
	return filter, nil
}
