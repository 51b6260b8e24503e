package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePostingRequest defines a request to post one transaction through a
// journal. Date is optional and defaults to today; it uses calendar-day
// granularity ("2006-01-02").
type CreatePostingRequest struct {
	JournalID        string          `json:"journal"`
	CurrencyID       string          `json:"currency" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Date             string          `json:"date,omitempty" binding:"omitempty,calendardate"`
	Description      string          `json:"description,omitempty"`
	SourceDocumentID *string         `json:"sourceDocument,omitempty"`
}

// EntryResponse defines the data returned for a single ledger entry.
type EntryResponse struct {
	EntryID          string           `json:"entryID"`
	JournalID        string           `json:"journalID"`
	AccountID        string           `json:"accountID"`
	Debit            *decimal.Decimal `json:"debit,omitempty"`
	Credit           *decimal.Decimal `json:"credit,omitempty"`
	CurrencyName     string           `json:"currencyName"`
	CurrencyRate     decimal.Decimal  `json:"currencyRate"`
	Date             string           `json:"date"`
	Description      string           `json:"description,omitempty"`
	SourceDocumentID *string          `json:"sourceDocumentID,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	CreatedBy        string           `json:"createdBy"`
}

// PostingResponse is the pair of entries produced by one posting.
type PostingResponse struct {
	DebitEntry  EntryResponse `json:"debitEntry"`
	CreditEntry EntryResponse `json:"creditEntry"`
}

// CorrectEntryDatesRequest selects entries for a bulk date correction and
// supplies the corrected date. Only the date field of matching entries changes.
type CorrectEntryDatesRequest struct {
	JournalID        *string `json:"journalID,omitempty"`
	SourceDocumentID *string `json:"sourceDocumentID,omitempty"`
	EntryDate        *string `json:"entryDate,omitempty" binding:"omitempty,calendardate"`
	NewDate          string  `json:"newDate" binding:"required,calendardate"`
}

// ToEntryResponse converts a domain.JournalEntry to an EntryResponse DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	return EntryResponse{
		EntryID:          e.EntryID,
		JournalID:        e.JournalID,
		AccountID:        e.AccountID,
		Debit:            e.Debit,
		Credit:           e.Credit,
		CurrencyName:     e.Currency.Name,
		CurrencyRate:     e.Currency.Rate,
		Date:             e.EntryDate.Format(domain.RateDateLayout),
		Description:      e.Description,
		SourceDocumentID: e.SourceDocumentID,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
	}
}

// ToPostingResponse converts a domain.EntryPair to a PostingResponse DTO.
func ToPostingResponse(pair *domain.EntryPair) PostingResponse {
	return PostingResponse{
		DebitEntry:  ToEntryResponse(&pair.DebitEntry),
		CreditEntry: ToEntryResponse(&pair.CreditEntry),
	}
}
