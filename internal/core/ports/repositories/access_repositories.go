package repositories

import "context"

// AccessRepository looks up per-user module capabilities. The surrounding
// handler consults it before exposing ledger reads; the posting core never
// calls it.
type AccessRepository interface {
	// HasReadAccess reports whether the user may read the given module.
	HasReadAccess(ctx context.Context, userID string, moduleID int) (bool, error)
}
