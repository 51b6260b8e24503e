package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryViewRow is one row of the ledger view: a persisted entry joined with
// its account, journal name and originating source document, with amounts
// normalized into the base currency by the recorded rate.
type EntryViewRow struct {
	EntryID            string           `json:"entryID"`
	JournalID          string           `json:"journalID"`
	JournalName        string           `json:"journalName"`
	AccountID          string           `json:"accountID"`
	AccountName        string           `json:"accountName"`
	Debit              *decimal.Decimal `json:"debit,omitempty"`  // Divided by the recorded rate
	Credit             *decimal.Decimal `json:"credit,omitempty"` // Divided by the recorded rate
	Currency           RecordedCurrency `json:"currency"`
	EntryDate          time.Time        `json:"date"`
	SourceDocumentID   *string          `json:"sourceDocumentID,omitempty"`
	SourceDocumentName *string          `json:"sourceDocumentName,omitempty"`
	SupplierName       *string          `json:"supplierName,omitempty"`
}
