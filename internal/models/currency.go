package models

// Currency represents a supported currency row.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`       // Rate-table key, e.g. "USD"
	Symbol     string `json:"symbol"`     // e.g., "$"
	AuditFields
}
