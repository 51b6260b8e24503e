package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
)

// HistoricalRateSource supplies exchange rate snapshots for calendar dates.
// Implementations own their cache; the first request for a date fetches from
// the external rate service, later requests for the same date reuse the
// cached snapshot.
type HistoricalRateSource interface {
	// RatesFor returns the rate snapshot in effect on the given calendar date.
	// The date is truncated to day granularity by the caller.
	RatesFor(ctx context.Context, date time.Time) (*domain.RateSnapshot, error)
}
