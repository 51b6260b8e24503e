package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_posting_app/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_posting_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccessRepository struct {
	BaseRepository
}

// newPgxAccessRepository creates a new repository for module access checks.
func newPgxAccessRepository(pool *pgxpool.Pool) portsrepo.AccessRepository {
	return &PgxAccessRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccessRepository = (*PgxAccessRepository)(nil)

// HasReadAccess reports whether the user has a read grant for the module.
// A missing row means no access, not an error.
func (r *PgxAccessRepository) HasReadAccess(ctx context.Context, userID string, moduleID int) (bool, error) {
	query := `
		SELECT read_access
		FROM user_module_access
		WHERE user_id = $1 AND module_id = $2;
	`
	var readAccess bool
	err := r.Pool.QueryRow(ctx, query, userID, moduleID).Scan(&readAccess)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperrors.NewAppError(500, "failed to query module access", err)
	}
	return readAccess, nil
}
