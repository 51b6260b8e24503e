package services

import "context"

// Module identifiers used for capability checks. These mirror the numeric
// module registry of the upstream ERP suite.
const (
	ModuleJournalEntries = 86
)

// AccessSvcFacade is the access-control gate consulted by handlers before
// exposing reads. It is a policy side call, decoupled from the posting core.
type AccessSvcFacade interface {
	// HasReadAccess reports whether the user may read the given module.
	HasReadAccess(ctx context.Context, userID string, moduleID int) (bool, error)
}
