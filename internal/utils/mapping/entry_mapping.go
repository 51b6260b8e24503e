package mapping

import (
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/models"
)

// ToModelEntry converts a domain JournalEntry to a model JournalEntry
func ToModelEntry(d domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:          d.EntryID,
		JournalID:        d.JournalID,
		AccountID:        d.AccountID,
		Debit:            d.Debit,
		Credit:           d.Credit,
		CurrencyName:     d.Currency.Name,
		CurrencyRate:     d.Currency.Rate,
		EntryDate:        d.EntryDate,
		Description:      d.Description,
		SourceDocumentID: d.SourceDocumentID,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model JournalEntry to a domain JournalEntry
func ToDomainEntry(m models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:   m.EntryID,
		JournalID: m.JournalID,
		AccountID: m.AccountID,
		Debit:     m.Debit,
		Credit:    m.Credit,
		Currency: domain.RecordedCurrency{
			Name: m.CurrencyName,
			Rate: m.CurrencyRate,
		},
		EntryDate:        m.EntryDate,
		Description:      m.Description,
		SourceDocumentID: m.SourceDocumentID,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
