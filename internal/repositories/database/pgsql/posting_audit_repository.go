package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/organic_store_accounting/internal/apperrors"
	"github.com/SscSPs/organic_store_accounting/internal/core/domain"
	portsrepo "github.com/SscSPs/organic_store_accounting/internal/core/ports/repositories"
	"github.com/SscSPs/organic_store_accounting/internal/models"
	"github.com/SscSPs/organic_store_accounting/internal/utils/mapping"
	"github.com/SscSPs/organic_store_accounting/internal/utils/pagination"
)

const defaultAttemptPageSize = 50

// PgxPostingAuditRepository stores posting attempts in the posting_attempts table.
type PgxPostingAuditRepository struct {
	BaseRepository
}

func newPgxPostingAuditRepository(pool *pgxpool.Pool) *PgxPostingAuditRepository {
	return &PgxPostingAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PostingAuditRepository = (*PgxPostingAuditRepository)(nil)

// SavePostingAttempt inserts one attempt. Attempts are append-only.
func (r *PgxPostingAuditRepository) SavePostingAttempt(ctx context.Context, attempt domain.PostingAttempt) error {
	m := mapping.ToModelPostingAttempt(attempt)
	query := `
		INSERT INTO posting_attempts (attempt_id, reference_no, attempt_no, state, outcome, message, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AttemptID,
		m.ReferenceNo,
		m.AttemptNo,
		m.State,
		m.Outcome,
		m.Message,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return r.wrapError(fmt.Sprintf("failed to save posting attempt %s", m.AttemptID), err)
	}
	return nil
}

// ListPostingAttempts returns one page of attempts ordered by (created_at, attempt_id) descending.
func (r *PgxPostingAuditRepository) ListPostingAttempts(ctx context.Context, params portsrepo.ListAttemptsParams) ([]domain.PostingAttempt, *string, error) {
	if params.Limit <= 0 {
		params.Limit = defaultAttemptPageSize
	}

	var (
		cursorTime *time.Time
		cursorID   *string
	)
	if params.NextToken != nil && *params.NextToken != "" {
		createdAt, id, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursorTime, cursorID = &createdAt, &id
	}

	query := `
		SELECT attempt_id::text AS attempt_id, reference_no, attempt_no, state, outcome, message, created_at, created_by
		FROM posting_attempts
		WHERE ($1::text = '' OR reference_no = $1::text)
		  AND ($2::timestamptz IS NULL OR (created_at, attempt_id) < ($2::timestamptz, $3::uuid))
		ORDER BY created_at DESC, attempt_id DESC
		LIMIT $4;
	`
	// Fetch one extra row to know whether another page exists.
	rows, err := r.Pool.Query(ctx, query, params.ReferenceNo, cursorTime, cursorID, params.Limit+1)
	if err != nil {
		return nil, nil, r.wrapError("failed to query posting attempts", err)
	}

	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PostingAttempt])
	if err != nil {
		return nil, nil, r.wrapError("failed to scan posting attempts", err)
	}

	var next *string
	if len(ms) > params.Limit {
		ms = ms[:params.Limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.AttemptID)
		next = &token
	}
	return mapping.ToDomainPostingAttempts(ms), next, nil
}
