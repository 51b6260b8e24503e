package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
	"github.com/SscSPs/ledger_posting_app/internal/middleware"
)

var (
	ErrJournalIDRequired = fmt.Errorf("%w: journal id is required", apperrors.ErrValidation)
	ErrAmountNotPositive = fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
)

// postingService sequences one "post transaction" operation: currency and
// journal resolution, historical rate acquisition, paired entry construction
// and the atomic dual write.
type postingService struct {
	currencySvc portssvc.CurrencyReaderSvc
	journalSvc  portssvc.JournalReaderSvc
	rateSource  portsrepo.HistoricalRateSource
	entryRepo   portsrepo.EntryWriter
}

// NewPostingService creates a new PostingService.
func NewPostingService(
	currencySvc portssvc.CurrencyReaderSvc,
	journalSvc portssvc.JournalReaderSvc,
	rateSource portsrepo.HistoricalRateSource,
	entryRepo portsrepo.EntryWriter,
) portssvc.PostingSvcFacade {
	return &postingService{
		currencySvc: currencySvc,
		journalSvc:  journalSvc,
		rateSource:  rateSource,
		entryRepo:   entryRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// PostTransaction posts one transaction through the given journal.
// The resolution steps are strictly sequential; an invalid request never
// reaches the rate service, and a failed rate fetch never reaches storage.
// Both entries commit in a single database transaction, so a half-posting
// cannot be observed.
func (s *postingService) PostTransaction(ctx context.Context, req dto.CreatePostingRequest, actingUserID string) (*domain.EntryPair, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.JournalID == "" {
		return nil, ErrJournalIDRequired
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrAmountNotPositive
	}

	postingDate, err := resolvePostingDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Resolve the currency name from its identifier.
	currency, err := s.currencySvc.GetCurrencyByID(ctx, req.CurrencyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve currency for posting", slog.String("currency_id", req.CurrencyID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to resolve currency %s: %w", req.CurrencyID, err)
	}

	// Resolve the journal and validate its structure.
	journal, err := s.journalSvc.GetJournalByID(ctx, req.JournalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: journal %s does not exist", apperrors.ErrInvalidJournal, req.JournalID)
		}
		logger.Error("Failed to resolve journal for posting", slog.String("journal_id", req.JournalID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve journal %s: %w", req.JournalID, err)
	}
	if journal == nil || journal.JournalID == "" {
		return nil, fmt.Errorf("%w: journal %s resolved to a malformed record", apperrors.ErrInvalidJournal, req.JournalID)
	}

	// Fetch the historical snapshot for the posting date, never the current one.
	snapshot, err := s.rateSource.RatesFor(ctx, postingDate)
	if err != nil {
		logger.Error("Historical rate fetch failed", slog.String("date", postingDate.Format(domain.RateDateLayout)), slog.String("error", err.Error()))
		return nil, err
	}
	rate, ok := snapshot.RateFor(currency.Name)
	if !ok {
		// No fallback rate is ever applied.
		return nil, fmt.Errorf("%w: no rate for %s on %s", apperrors.ErrRateUnavailable, currency.Name, postingDate.Format(domain.RateDateLayout))
	}

	debit, credit := buildEntryPair(req, journal, currency.Name, rate, actingUserID, postingDate)

	if err := s.entryRepo.SaveEntryPair(ctx, debit, credit); err != nil {
		logger.Error("Failed to persist entry pair", slog.String("journal_id", journal.JournalID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist entry pair: %w", err)
	}

	logger.Info("Transaction posted",
		slog.String("journal_id", journal.JournalID),
		slog.String("debit_entry_id", debit.EntryID),
		slog.String("credit_entry_id", credit.EntryID),
		slog.String("currency", currency.Name),
		slog.String("date", postingDate.Format(domain.RateDateLayout)),
	)
	return &domain.EntryPair{DebitEntry: debit, CreditEntry: credit}, nil
}

// buildEntryPair constructs the two complementary entries from shared inputs.
// Both legs carry the same journal, date, currency name and rate; the resolved
// currency always overwrites whatever the request carried.
func buildEntryPair(req dto.CreatePostingRequest, journal *domain.Journal, currencyName string, rate decimal.Decimal, actingUserID string, postingDate time.Time) (domain.JournalEntry, domain.JournalEntry) {
	now := time.Now().UTC()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actingUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: actingUserID,
	}

	base := domain.JournalEntry{
		JournalID: journal.JournalID,
		Currency: domain.RecordedCurrency{
			Name: currencyName,
			Rate: rate,
		},
		EntryDate:        postingDate,
		Description:      req.Description,
		SourceDocumentID: req.SourceDocumentID,
		AuditFields:      audit,
	}

	debitAmount := req.Amount
	creditAmount := req.Amount

	debit := base
	debit.EntryID = uuid.NewString()
	debit.AccountID = journal.DebitAccountID
	debit.Debit = &debitAmount

	credit := base
	credit.EntryID = uuid.NewString()
	credit.AccountID = journal.CreditAccountID
	credit.Credit = &creditAmount

	return debit, credit
}

// resolvePostingDate parses the request date, defaulting to today, truncated
// to calendar-day granularity in UTC.
func resolvePostingDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.ParseInLocation(domain.RateDateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must use %s format: %v", domain.RateDateLayout, err)
	}
	return date, nil
}
