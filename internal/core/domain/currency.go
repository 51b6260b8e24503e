package domain

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary Key (e.g., UUID)
	Name       string `json:"name"`       // Rate-table key, e.g. "USD"
	Symbol     string `json:"symbol"`     // e.g., "$"
	AuditFields
}
