package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/internal/core/services"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
)

// --- Mock CurrencyReaderSvc ---
type MockCurrencyReaderSvc struct {
	mock.Mock
}

func (m *MockCurrencyReaderSvc) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyReaderSvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock JournalReaderSvc ---
type MockJournalReaderSvc struct {
	mock.Mock
}

func (m *MockJournalReaderSvc) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalReaderSvc) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Journal), args.Error(1)
}

// --- Mock HistoricalRateSource ---
type MockRateSource struct {
	mock.Mock
}

func (m *MockRateSource) RatesFor(ctx context.Context, date time.Time) (*domain.RateSnapshot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

// --- Mock EntryWriter ---
type MockEntryWriter struct {
	mock.Mock
}

func (m *MockEntryWriter) SaveEntryPair(ctx context.Context, debit, credit domain.JournalEntry) error {
	args := m.Called(ctx, debit, credit)
	return args.Error(0)
}

func (m *MockEntryWriter) DeleteBySourceDocument(ctx context.Context, sourceDocumentID string) (int64, error) {
	args := m.Called(ctx, sourceDocumentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryWriter) UpdateEntryDates(ctx context.Context, filter portsrepo.EntryDateFilter, newDate time.Time, updatedByUserID string, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, filter, newDate, updatedByUserID, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type PostingServiceTestSuite struct {
	suite.Suite
	mockCurrencySvc *MockCurrencyReaderSvc
	mockJournalSvc  *MockJournalReaderSvc
	mockRateSource  *MockRateSource
	mockEntryRepo   *MockEntryWriter
	service         portssvc.PostingSvcFacade

	currency domain.Currency
	journal  domain.Journal
}

func (suite *PostingServiceTestSuite) SetupTest() {
	suite.mockCurrencySvc = new(MockCurrencyReaderSvc)
	suite.mockJournalSvc = new(MockJournalReaderSvc)
	suite.mockRateSource = new(MockRateSource)
	suite.mockEntryRepo = new(MockEntryWriter)
	suite.service = services.NewPostingService(
		suite.mockCurrencySvc,
		suite.mockJournalSvc,
		suite.mockRateSource,
		suite.mockEntryRepo,
	)

	suite.currency = domain.Currency{
		CurrencyID: uuid.NewString(),
		Name:       "USD",
		Symbol:     "$",
	}
	suite.journal = domain.Journal{
		JournalID:       uuid.NewString(),
		Name:            "Purchases",
		DebitAccountID:  uuid.NewString(),
		CreditAccountID: uuid.NewString(),
	}
}

func snapshotFor(date string, rates map[string]decimal.Decimal) *domain.RateSnapshot {
	d, _ := time.ParseInLocation(domain.RateDateLayout, date, time.UTC)
	return &domain.RateSnapshot{Date: d, Base: "USD", Rates: rates}
}

// --- Test Cases ---

func (suite *PostingServiceTestSuite) TestPostTransaction_Success() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}
	postingDate := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&suite.journal, nil).Once()
	suite.mockRateSource.On("RatesFor", ctx, postingDate).
		Return(snapshotFor("2022-01-01", map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}), nil).Once()
	suite.mockEntryRepo.On("SaveEntryPair", ctx,
		mock.AnythingOfType("domain.JournalEntry"),
		mock.AnythingOfType("domain.JournalEntry"),
	).Return(nil).Once()

	pair, err := suite.service.PostTransaction(ctx, req, actingUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)

	debit := pair.DebitEntry
	credit := pair.CreditEntry

	suite.Equal(suite.journal.DebitAccountID, debit.AccountID)
	suite.Require().NotNil(debit.Debit)
	suite.True(debit.Debit.Equal(req.Amount))
	suite.Nil(debit.Credit)

	suite.Equal(suite.journal.CreditAccountID, credit.AccountID)
	suite.Require().NotNil(credit.Credit)
	suite.True(credit.Credit.Equal(req.Amount))
	suite.Nil(credit.Debit)

	// Shared leg data must be identical.
	suite.Equal(debit.JournalID, credit.JournalID)
	suite.Equal("USD", debit.Currency.Name)
	suite.True(debit.Currency.Rate.Equal(decimal.NewFromInt(1)))
	suite.Equal(debit.Currency, credit.Currency)
	suite.Equal(postingDate, debit.EntryDate)
	suite.Equal(debit.EntryDate, credit.EntryDate)
	suite.Equal(actingUserID, debit.CreatedBy)
	suite.Equal(debit.AuditFields, credit.AuditFields)
	suite.NotEqual(debit.EntryID, credit.EntryID)

	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_MissingJournalID() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
	}

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrValidation)

	// Nothing downstream runs on a rejected request.
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetCurrencyByID", mock.Anything, mock.Anything)
	suite.mockRateSource.AssertNotCalled(suite.T(), "RatesFor", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntryPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.Zero,
	}

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntryPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_MalformedDate() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(10),
		Date:       "01/02/2022",
	}

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCurrencySvc.AssertNotCalled(suite.T(), "GetCurrencyByID", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_UnknownCurrency() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: "missing-currency",
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockJournalSvc.AssertNotCalled(suite.T(), "GetJournalByID", mock.Anything, mock.Anything)
	suite.mockRateSource.AssertNotCalled(suite.T(), "RatesFor", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntryPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_UnknownJournal() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  "missing-journal",
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(nil, apperrors.ErrNotFound).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrInvalidJournal)
	suite.mockRateSource.AssertNotCalled(suite.T(), "RatesFor", mock.Anything, mock.Anything)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntryPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_MalformedJournalRecord() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&domain.Journal{}, nil).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrInvalidJournal)
	suite.mockRateSource.AssertNotCalled(suite.T(), "RatesFor", mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_RateFetchFails() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}
	postingDate := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&suite.journal, nil).Once()
	suite.mockRateSource.On("RatesFor", ctx, postingDate).Return(nil, apperrors.ErrRateUnavailable).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntryPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_RateMissingFromSnapshot() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}
	postingDate := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&suite.journal, nil).Once()
	suite.mockRateSource.On("RatesFor", ctx, postingDate).
		Return(snapshotFor("2022-01-01", map[string]decimal.Decimal{"EUR": decimal.NewFromFloat(0.9)}), nil).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, apperrors.ErrRateUnavailable)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntryPair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PostingServiceTestSuite) TestPostTransaction_HistoricalRateRecorded() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(250),
		Date:       "2020-06-15",
	}
	postingDate := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	historicalRate := decimal.NewFromFloat(1.1352)

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&suite.journal, nil).Once()
	suite.mockRateSource.On("RatesFor", ctx, postingDate).
		Return(snapshotFor("2020-06-15", map[string]decimal.Decimal{"USD": historicalRate}), nil).Once()
	suite.mockEntryRepo.On("SaveEntryPair", ctx,
		mock.MatchedBy(func(e domain.JournalEntry) bool { return e.Currency.Rate.Equal(historicalRate) }),
		mock.MatchedBy(func(e domain.JournalEntry) bool { return e.Currency.Rate.Equal(historicalRate) }),
	).Return(nil).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(pair)
	suite.Equal(postingDate, pair.DebitEntry.EntryDate)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_DefaultsToToday() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(5),
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&suite.journal, nil).Once()
	suite.mockRateSource.On("RatesFor", ctx, today).
		Return(snapshotFor(today.Format(domain.RateDateLayout), map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}), nil).Once()
	suite.mockEntryRepo.On("SaveEntryPair", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("domain.JournalEntry")).Return(nil).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(today, pair.DebitEntry.EntryDate)
	suite.mockRateSource.AssertExpectations(suite.T())
}

func (suite *PostingServiceTestSuite) TestPostTransaction_SaveFailurePropagates() {
	ctx := context.Background()
	req := dto.CreatePostingRequest{
		JournalID:  suite.journal.JournalID,
		CurrencyID: suite.currency.CurrencyID,
		Amount:     decimal.NewFromInt(100),
		Date:       "2022-01-01",
	}
	postingDate := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	expectedErr := assert.AnError

	suite.mockCurrencySvc.On("GetCurrencyByID", ctx, req.CurrencyID).Return(&suite.currency, nil).Once()
	suite.mockJournalSvc.On("GetJournalByID", ctx, req.JournalID).Return(&suite.journal, nil).Once()
	suite.mockRateSource.On("RatesFor", ctx, postingDate).
		Return(snapshotFor("2022-01-01", map[string]decimal.Decimal{"USD": decimal.NewFromInt(1)}), nil).Once()
	suite.mockEntryRepo.On("SaveEntryPair", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("domain.JournalEntry")).Return(expectedErr).Once()

	pair, err := suite.service.PostTransaction(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(pair)
	suite.ErrorIs(err, expectedErr)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func TestPostingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostingServiceTestSuite))
}
