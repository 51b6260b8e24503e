package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/models"
	"github.com/SscSPs/ledger_posting_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal reference data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// SaveJournal inserts a new journal template.
func (r *PgxJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal) error {
	modelJournal := mapping.ToModelJournal(journal)

	query := `
		INSERT INTO journals (journal_id, name, debit_account_id, credit_account_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelJournal.JournalID,
		modelJournal.Name,
		modelJournal.DebitAccountID,
		modelJournal.CreditAccountID,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)

	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal "+modelJournal.JournalID, err)
	}
	return nil
}

// FindJournalByID retrieves a journal by its identifier.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, name, debit_account_id, credit_account_id, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var modelJournal models.Journal
	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&modelJournal.JournalID,
		&modelJournal.Name,
		&modelJournal.DebitAccountID,
		&modelJournal.CreditAccountID,
		&modelJournal.CreatedAt,
		&modelJournal.CreatedBy,
		&modelJournal.LastUpdatedAt,
		&modelJournal.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal by id %s: %w", journalID, err)
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

// ListJournals retrieves all journals.
func (r *PgxJournalRepository) ListJournals(ctx context.Context) ([]domain.Journal, error) {
	query := `
		SELECT journal_id, name, debit_account_id, credit_account_id, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	modelJournals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Journal, error) {
		var journal models.Journal
		err := row.Scan(
			&journal.JournalID,
			&journal.Name,
			&journal.DebitAccountID,
			&journal.CreditAccountID,
			&journal.CreatedAt,
			&journal.CreatedBy,
			&journal.LastUpdatedAt,
			&journal.LastUpdatedBy,
		)
		return journal, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Journal{}, nil
		}
		return nil, fmt.Errorf("failed to scan journals: %w", err)
	}

	return mapping.ToDomainJournalSlice(modelJournals), nil
}
