package services

import (
	"context"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	"github.com/SscSPs/ledger_posting_app/internal/dto"
)

// PostingSvcFacade is the posting engine's entry point: it turns a posting
// request into one balanced debit/credit entry pair, or fails without writing.
type PostingSvcFacade interface {
	// PostTransaction resolves currency and journal, fetches the historical
	// rate for the posting date, builds the complementary entries and persists
	// both atomically. Never reports partial success.
	PostTransaction(ctx context.Context, req dto.CreatePostingRequest, actingUserID string) (*domain.EntryPair, error)
}
