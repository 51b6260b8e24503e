package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateDateLayout is the calendar-day key format used for rate snapshots.
const RateDateLayout = "2006-01-02"

// RateSnapshot is the set of conversion rates in effect on one calendar date,
// keyed by currency name, relative to a fixed base currency.
type RateSnapshot struct {
	Date  time.Time                  `json:"date"`
	Base  string                     `json:"base"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// RateFor returns the rate for the given currency name, if present.
func (s *RateSnapshot) RateFor(currencyName string) (decimal.Decimal, bool) {
	rate, ok := s.Rates[currencyName]
	return rate, ok
}
