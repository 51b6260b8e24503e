package models

// Journal represents a posting template row: the fixed debit/credit account pair.
type Journal struct {
	JournalID       string `json:"journalID"` // Primary Key (e.g., UUID)
	Name            string `json:"name"`
	DebitAccountID  string `json:"debitAccountID"`  // FK -> chart_of_accounts
	CreditAccountID string `json:"creditAccountID"` // FK -> chart_of_accounts
	AuditFields
}
