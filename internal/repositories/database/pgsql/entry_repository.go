package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	"github.com/SscSPs/ledger_posting_app/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_app/internal/models"
	"github.com/SscSPs/ledger_posting_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for ledger entries.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryWithTx {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntryRepositoryWithTx = (*PgxEntryRepository)(nil)

const insertEntryQuery = `
	INSERT INTO journal_entries (
		entry_id, journal_id, account_id, debit, credit,
		currency_name, currency_rate, entry_date, description, source_document_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

// SaveEntryPair persists both legs of a posting inside a single database
// transaction. Either both rows commit or neither does; a half-posting can
// never be observed by readers.
func (r *PgxEntryRepository) SaveEntryPair(ctx context.Context, debit, credit domain.JournalEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored if the transaction commits.
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, entry := range []domain.JournalEntry{debit, credit} {
		m := mapping.ToModelEntry(entry)
		batch.Queue(insertEntryQuery,
			m.EntryID,
			m.JournalID,
			m.AccountID,
			m.Debit,
			m.Credit,
			m.CurrencyName,
			m.CurrencyRate,
			m.EntryDate,
			m.Description,
			m.SourceDocumentID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert entry pair", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close entry pair batch", err)
	}

	return r.Commit(ctx, tx)
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, journal_id, account_id, debit, credit,
		       currency_name, currency_rate, entry_date, description, source_document_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1;
	`
	var m models.JournalEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.JournalID,
		&m.AccountID,
		&m.Debit,
		&m.Credit,
		&m.CurrencyName,
		&m.CurrencyRate,
		&m.EntryDate,
		&m.Description,
		&m.SourceDocumentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by id %s: %w", entryID, err)
	}

	entry := mapping.ToDomainEntry(m)
	return &entry, nil
}

// ListEntriesForView retrieves entries joined with their account, journal and
// source document, with debit/credit divided by the recorded rate so the view
// reads in the base currency.
func (r *PgxEntryRepository) ListEntriesForView(ctx context.Context) ([]domain.EntryViewRow, error) {
	query := `
		SELECT e.entry_id,
		       e.journal_id,
		       j.name AS journal_name,
		       e.account_id,
		       a.name AS account_name,
		       e.debit / e.currency_rate AS debit,
		       e.credit / e.currency_rate AS credit,
		       e.currency_name,
		       e.currency_rate,
		       e.entry_date,
		       e.source_document_id,
		       d.name AS source_document_name,
		       s.name AS supplier_name
		FROM journal_entries e
		JOIN journals j ON j.journal_id = e.journal_id
		JOIN chart_of_accounts a ON a.account_id = e.account_id
		LEFT JOIN source_documents d ON d.document_id = e.source_document_id
		LEFT JOIN suppliers s ON s.supplier_id = d.supplier_id
		ORDER BY e.entry_date, e.entry_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry view: %w", err)
	}
	defer rows.Close()

	viewRows, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EntryViewRow, error) {
		var v domain.EntryViewRow
		err := row.Scan(
			&v.EntryID,
			&v.JournalID,
			&v.JournalName,
			&v.AccountID,
			&v.AccountName,
			&v.Debit,
			&v.Credit,
			&v.Currency.Name,
			&v.Currency.Rate,
			&v.EntryDate,
			&v.SourceDocumentID,
			&v.SourceDocumentName,
			&v.SupplierName,
		)
		return v, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.EntryViewRow{}, nil
		}
		return nil, fmt.Errorf("failed to scan entry view rows: %w", err)
	}

	return viewRows, nil
}

// DeleteBySourceDocument removes every entry referencing the given source
// document and returns the number of rows removed.
func (r *PgxEntryRepository) DeleteBySourceDocument(ctx context.Context, sourceDocumentID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM journal_entries WHERE source_document_id = $1;`, sourceDocumentID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete entries for source document "+sourceDocumentID, err)
	}
	return tag.RowsAffected(), nil
}

// UpdateEntryDates sets the entry date on all entries matched by the filter.
// Only the date and the audit stamp change; amounts, currency and account
// columns are never touched by this statement.
func (r *PgxEntryRepository) UpdateEntryDates(ctx context.Context, filter portsrepo.EntryDateFilter, newDate time.Time, updatedByUserID string, updatedAt time.Time) (int64, error) {
	if filter.IsEmpty() {
		return 0, fmt.Errorf("%w: refusing unfiltered bulk date update", apperrors.ErrValidation)
	}

	query := `
		UPDATE journal_entries
		SET entry_date = $1, last_updated_at = $2, last_updated_by = $3
		WHERE ($4::text IS NULL OR journal_id = $4)
		  AND ($5::text IS NULL OR source_document_id = $5)
		  AND ($6::date IS NULL OR entry_date = $6);
	`
	tag, err := r.Pool.Exec(ctx, query,
		newDate,
		updatedAt,
		updatedByUserID,
		filter.JournalID,
		filter.SourceDocumentID,
		filter.EntryDate,
	)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to bulk update entry dates", err)
	}
	return tag.RowsAffected(), nil
}
