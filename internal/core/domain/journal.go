package domain

// Journal is a posting template: a named, immutable pairing of the account to
// debit and the account to credit. The posting engine looks journals up but
// never mutates them.
type Journal struct {
	JournalID       string `json:"journalID"`       // Primary Key (e.g., UUID)
	Name            string `json:"name"`            // Display name
	DebitAccountID  string `json:"debitAccountID"`  // FK -> chart_of_accounts
	CreditAccountID string `json:"creditAccountID"` // FK -> chart_of_accounts
	AuditFields
}
