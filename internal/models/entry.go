package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry represents a persisted ledger entry row. Exactly one of
// Debit/Credit is non-nil, enforced by a table check constraint.
type JournalEntry struct {
	EntryID          string           `json:"entryID"` // Primary Key (e.g., UUID)
	JournalID        string           `json:"journalID"`
	AccountID        string           `json:"accountID"`
	Debit            *decimal.Decimal `json:"debit,omitempty"`
	Credit           *decimal.Decimal `json:"credit,omitempty"`
	CurrencyName     string           `json:"currencyName"`
	CurrencyRate     decimal.Decimal  `json:"currencyRate"`
	EntryDate        time.Time        `json:"entryDate"`
	Description      string           `json:"description"`
	SourceDocumentID *string          `json:"sourceDocumentID,omitempty"`
	AuditFields
}
