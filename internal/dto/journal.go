package dto

import (
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// CreateJournalRequest defines the data needed to create a posting journal.
type CreateJournalRequest struct {
	Name            string `json:"name" binding:"required"`
	DebitAccountID  string `json:"debitAccountID" binding:"required"`
	CreditAccountID string `json:"creditAccountID" binding:"required,nefield=DebitAccountID"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID       string    `json:"journalID"`
	Name            string    `json:"name"`
	DebitAccountID  string    `json:"debitAccountID"`
	CreditAccountID string    `json:"creditAccountID"`
	CreatedAt       time.Time `json:"createdAt"`
	CreatedBy       string    `json:"createdBy"`
}

// ToJournalResponse converts a domain.Journal to JournalResponse DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	return JournalResponse{
		JournalID:       j.JournalID,
		Name:            j.Name,
		DebitAccountID:  j.DebitAccountID,
		CreditAccountID: j.CreditAccountID,
		CreatedAt:       j.CreatedAt,
		CreatedBy:       j.CreatedBy,
	}
}

// ToListJournalResponse converts a slice of domain.Journal to JournalResponse DTOs.
func ToListJournalResponse(journals []domain.Journal) []JournalResponse {
	res := make([]JournalResponse, len(journals))
	for i, j := range journals {
		res[i] = ToJournalResponse(&j)
	}
	return res
}
