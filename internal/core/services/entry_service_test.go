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

// --- Mock EntryRepositoryFacade ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockEntryRepository) ListEntriesForView(ctx context.Context) ([]domain.EntryViewRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryViewRow), args.Error(1)
}

func (m *MockEntryRepository) SaveEntryPair(ctx context.Context, debit, credit domain.JournalEntry) error {
	args := m.Called(ctx, debit, credit)
	return args.Error(0)
}

func (m *MockEntryRepository) DeleteBySourceDocument(ctx context.Context, sourceDocumentID string) (int64, error) {
	args := m.Called(ctx, sourceDocumentID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntryRepository) UpdateEntryDates(ctx context.Context, filter portsrepo.EntryDateFilter, newDate time.Time, updatedByUserID string, updatedAt time.Time) (int64, error) {
	args := m.Called(ctx, filter, newDate, updatedByUserID, updatedAt)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type EntryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockEntryRepository
	service  portssvc.EntrySvcFacade
}

func (suite *EntryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEntryRepository)
	suite.service = services.NewEntryService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *EntryServiceTestSuite) TestGetEntryByID_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	amount := decimal.NewFromInt(100)
	expected := &domain.JournalEntry{
		EntryID: entryID,
		Debit:   &amount,
		Currency: domain.RecordedCurrency{
			Name: "USD",
			Rate: decimal.NewFromInt(1),
		},
	}

	suite.mockRepo.On("FindEntryByID", ctx, entryID).Return(expected, nil).Once()

	entry, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().NoError(err)
	suite.Equal(expected, entry)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestGetEntryByID_NotFound() {
	ctx := context.Background()
	entryID := uuid.NewString()

	suite.mockRepo.On("FindEntryByID", ctx, entryID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestListEntriesForView_Success() {
	ctx := context.Background()
	rows := []domain.EntryViewRow{
		{EntryID: uuid.NewString(), JournalName: "Purchases", AccountName: "Expenses"},
		{EntryID: uuid.NewString(), JournalName: "Purchases", AccountName: "Payables"},
	}

	suite.mockRepo.On("ListEntriesForView", ctx).Return(rows, nil).Once()

	got, err := suite.service.ListEntriesForView(ctx)

	suite.Require().NoError(err)
	suite.Equal(rows, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestRemoveBySourceDocument_Success() {
	ctx := context.Background()
	documentID := uuid.NewString()

	suite.mockRepo.On("DeleteBySourceDocument", ctx, documentID).Return(int64(2), nil).Once()

	removed, err := suite.service.RemoveBySourceDocument(ctx, documentID, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(2), removed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestRemoveBySourceDocument_NoMatches() {
	ctx := context.Background()
	documentID := uuid.NewString()

	suite.mockRepo.On("DeleteBySourceDocument", ctx, documentID).Return(int64(0), nil).Once()

	removed, err := suite.service.RemoveBySourceDocument(ctx, documentID, uuid.NewString())

	// Deleting nothing is not an error.
	suite.Require().NoError(err)
	suite.Equal(int64(0), removed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestRemoveBySourceDocument_EmptyID() {
	ctx := context.Background()

	removed, err := suite.service.RemoveBySourceDocument(ctx, "", uuid.NewString())

	suite.Require().Error(err)
	suite.Equal(int64(0), removed)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteBySourceDocument", mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCorrectEntryDates_Success() {
	ctx := context.Background()
	actingUserID := uuid.NewString()
	journalID := uuid.NewString()
	oldDate := "2022-03-01"
	newDate := time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)
	req := dto.CorrectEntryDatesRequest{
		JournalID: &journalID,
		EntryDate: &oldDate,
		NewDate:   "2022-03-02",
	}

	suite.mockRepo.On("UpdateEntryDates", ctx,
		mock.MatchedBy(func(f portsrepo.EntryDateFilter) bool {
			return f.JournalID != nil && *f.JournalID == journalID &&
				f.SourceDocumentID == nil &&
				f.EntryDate != nil && f.EntryDate.Equal(time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC))
		}),
		newDate, actingUserID, mock.AnythingOfType("time.Time"),
	).Return(int64(4), nil).Once()

	updated, err := suite.service.CorrectEntryDates(ctx, req, newDate, actingUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(4), updated)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *EntryServiceTestSuite) TestCorrectEntryDates_EmptyFilter() {
	ctx := context.Background()
	req := dto.CorrectEntryDatesRequest{NewDate: "2022-03-02"}
	newDate := time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)

	updated, err := suite.service.CorrectEntryDates(ctx, req, newDate, uuid.NewString())

	suite.Require().Error(err)
	suite.Equal(int64(0), updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntryDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCorrectEntryDates_BadFilterDate() {
	ctx := context.Background()
	badDate := "March 1st"
	req := dto.CorrectEntryDatesRequest{EntryDate: &badDate, NewDate: "2022-03-02"}
	newDate := time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)

	updated, err := suite.service.CorrectEntryDates(ctx, req, newDate, uuid.NewString())

	suite.Require().Error(err)
	suite.Equal(int64(0), updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateEntryDates", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryServiceTestSuite) TestCorrectEntryDates_RepoError() {
	ctx := context.Background()
	documentID := uuid.NewString()
	req := dto.CorrectEntryDatesRequest{SourceDocumentID: &documentID, NewDate: "2022-03-02"}
	newDate := time.Date(2022, 3, 2, 0, 0, 0, 0, time.UTC)
	expectedErr := assert.AnError

	suite.mockRepo.On("UpdateEntryDates", ctx, mock.AnythingOfType("repositories.EntryDateFilter"), newDate, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Return(int64(0), expectedErr).Once()

	updated, err := suite.service.CorrectEntryDates(ctx, req, newDate, uuid.NewString())

	suite.Require().Error(err)
	suite.Equal(int64(0), updated)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EntryServiceTestSuite))
}
