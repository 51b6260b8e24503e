package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordedCurrency is the currency annotation stamped onto a ledger entry at
// posting time: the resolved currency name and the historical rate for the
// posting date, relative to the base currency of the rate snapshot.
type RecordedCurrency struct {
	Name string          `json:"name"` // e.g. "USD"
	Rate decimal.Decimal `json:"rate"` // Rate on the posting date, not at call time
}

// JournalEntry is a single ledger row recording either a debit or a credit
// against one account. Entries are created only in pairs by a posting; exactly
// one of Debit/Credit is set, never both, never neither.
type JournalEntry struct {
	EntryID          string           `json:"entryID"`   // Primary Key (e.g., UUID)
	JournalID        string           `json:"journalID"` // FK -> Journal.journalID (Not Null)
	AccountID        string           `json:"accountID"` // FK -> chart_of_accounts (Not Null)
	Debit            *decimal.Decimal `json:"debit,omitempty"`
	Credit           *decimal.Decimal `json:"credit,omitempty"`
	Currency         RecordedCurrency `json:"currency"`
	EntryDate        time.Time        `json:"date"` // Calendar-day granularity
	Description      string           `json:"description,omitempty"`
	SourceDocumentID *string          `json:"sourceDocumentID,omitempty"` // e.g. originating invoice
	AuditFields
}

// IsBalancedLeg reports whether the entry carries exactly one of debit/credit.
func (e *JournalEntry) IsBalancedLeg() bool {
	return (e.Debit == nil) != (e.Credit == nil)
}

// Amount returns whichever side of the entry is set.
func (e *JournalEntry) Amount() decimal.Decimal {
	if e.Debit != nil {
		return *e.Debit
	}
	if e.Credit != nil {
		return *e.Credit
	}
	return decimal.Zero
}

// EntryPair is the result of one posting: the debit leg and the credit leg,
// sharing journal, date, currency name and rate.
type EntryPair struct {
	DebitEntry  JournalEntry `json:"debitEntry"`
	CreditEntry JournalEntry `json:"creditEntry"`
}
