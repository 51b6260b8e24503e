package services

import (
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_posting_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_posting_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Reference-data services first; the posting service resolves through them.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Journal = NewJournalService(repos.JournalRepo)

	container.Posting = NewPostingService(
		container.Currency,
		container.Journal,
		repos.RateSource,
		repos.EntryRepo,
	)

	container.Entry = NewEntryService(repos.EntryRepo)
	container.Access = NewAccessService(repos.AccessRepo)

	return container
}
