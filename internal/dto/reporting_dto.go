package dto

import (
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryViewRowResponse is one row of the ledger view endpoint.
type EntryViewRowResponse struct {
	EntryID            string           `json:"entryID"`
	JournalID          string           `json:"journalID"`
	JournalName        string           `json:"journalName"`
	AccountID          string           `json:"accountID"`
	AccountName        string           `json:"accountName"`
	Debit              *decimal.Decimal `json:"debit,omitempty"`
	Credit             *decimal.Decimal `json:"credit,omitempty"`
	CurrencyName       string           `json:"currencyName"`
	CurrencyRate       decimal.Decimal  `json:"currencyRate"`
	Date               string           `json:"date"`
	SourceDocumentID   *string          `json:"sourceDocumentID,omitempty"`
	SourceDocumentName *string          `json:"sourceDocumentName,omitempty"`
	SupplierName       *string          `json:"supplierName,omitempty"`
}

// ToEntryViewResponse converts domain view rows to their response DTOs.
func ToEntryViewResponse(rows []domain.EntryViewRow) []EntryViewRowResponse {
	res := make([]EntryViewRowResponse, len(rows))
	for i, r := range rows {
		res[i] = EntryViewRowResponse{
			EntryID:            r.EntryID,
			JournalID:          r.JournalID,
			JournalName:        r.JournalName,
			AccountID:          r.AccountID,
			AccountName:        r.AccountName,
			Debit:              r.Debit,
			Credit:             r.Credit,
			CurrencyName:       r.Currency.Name,
			CurrencyRate:       r.Currency.Rate,
			Date:               r.EntryDate.Format(domain.RateDateLayout),
			SourceDocumentID:   r.SourceDocumentID,
			SourceDocumentName: r.SourceDocumentName,
			SupplierName:       r.SupplierName,
		}
	}
	return res
}
