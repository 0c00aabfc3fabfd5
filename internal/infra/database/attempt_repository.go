package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xavierca1/agents-outreach/internal/entity"
)

type AttemptRepository struct {
	DB *sql.DB
}

func NewAttemptRepository(db *sql.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// CreateBatch insere o lote inteiro numa transação: ou a sequência completa
// entra, ou nada entra.
func (r *AttemptRepository) CreateBatch(ctx context.Context, attempts []*entity.OutreachAttempt) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO outreach_attempts (
			id, prospect_id, sequence, channel, angle, subject, message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, a := range attempts {
		if _, err := tx.ExecContext(ctx, query,
			a.ID, a.ProspectID, a.Sequence, a.Channel, a.Angle,
			nullString(a.Subject), a.Message, a.CreatedAt,
		); err != nil {
			return fmt.Errorf("falha ao inserir intento %d: %w", a.Sequence, err)
		}
	}

	return tx.Commit()
}

func (r *AttemptRepository) DeleteByProspect(ctx context.Context, prospectID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM outreach_attempts WHERE prospect_id = $1`, prospectID)
	return err
}

func (r *AttemptRepository) FindByID(ctx context.Context, id string) (*entity.OutreachAttempt, error) {
	query := `
		SELECT id, prospect_id, sequence, channel, angle,
		       COALESCE(subject, ''), message, sent_at,
		       COALESCE(outcome, ''), COALESCE(outcome_note, ''), created_at
		FROM outreach_attempts
		WHERE id = $1
	`

	a := &entity.OutreachAttempt{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.ProspectID, &a.Sequence, &a.Channel, &a.Angle,
		&a.Subject, &a.Message, &a.SentAt,
		&a.Outcome, &a.OutcomeNote, &a.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (r *AttemptRepository) ListByProspect(ctx context.Context, prospectID string) ([]*entity.OutreachAttempt, error) {
	query := `
		SELECT id, prospect_id, sequence, channel, angle,
		       COALESCE(subject, ''), message, sent_at,
		       COALESCE(outcome, ''), COALESCE(outcome_note, ''), created_at
		FROM outreach_attempts
		WHERE prospect_id = $1
		ORDER BY sequence ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, prospectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attempts []*entity.OutreachAttempt
	for rows.Next() {
		a := &entity.OutreachAttempt{}
		if err := rows.Scan(
			&a.ID, &a.ProspectID, &a.Sequence, &a.Channel, &a.Angle,
			&a.Subject, &a.Message, &a.SentAt,
			&a.Outcome, &a.OutcomeNote, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}

	return attempts, rows.Err()
}

// FindPositiveByAccount: exemplares do feedback loop. Mais recentes
// primeiro, limitados, só da conta dona.
func (r *AttemptRepository) FindPositiveByAccount(ctx context.Context, accountID string, limit int) ([]*entity.PositiveExemplar, error) {
	query := `
		SELECT a.angle, a.sequence, a.message,
		       COALESCE(p.industry, ''), COALESCE(p.role, '')
		FROM outreach_attempts a
		JOIN prospects p ON p.id = a.prospect_id
		WHERE p.account_id = $1 AND a.outcome = $2
		ORDER BY a.created_at DESC
		LIMIT $3
	`

	rows, err := r.DB.QueryContext(ctx, query, accountID, entity.OutcomePositive, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exemplars []*entity.PositiveExemplar
	for rows.Next() {
		e := &entity.PositiveExemplar{}
		if err := rows.Scan(&e.Angle, &e.Sequence, &e.Message, &e.Industry, &e.Role); err != nil {
			return nil, err
		}
		exemplars = append(exemplars, e)
	}

	return exemplars, rows.Err()
}

func (r *AttemptRepository) ListOutcomesByAccount(ctx context.Context, accountID string) ([]entity.AttemptOutcomeRow, error) {
	query := `
		SELECT a.angle, COALESCE(a.outcome, '')
		FROM outreach_attempts a
		JOIN prospects p ON p.id = a.prospect_id
		WHERE p.account_id = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.AttemptOutcomeRow
	for rows.Next() {
		var row entity.AttemptOutcomeRow
		if err := rows.Scan(&row.Angle, &row.Outcome); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, rows.Err()
}

// MarkSent só escreve se sent_at ainda está vazio (idempotente no timestamp).
func (r *AttemptRepository) MarkSent(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE outreach_attempts SET sent_at = $1 WHERE id = $2 AND sent_at IS NULL`
	_, err := r.DB.ExecContext(ctx, query, at, id)
	return err
}

func (r *AttemptRepository) UpdateOutcome(ctx context.Context, a *entity.OutreachAttempt) error {
	query := `
		UPDATE outreach_attempts
		SET outcome = $1, outcome_note = $2, sent_at = $3
		WHERE id = $4
	`
	_, err := r.DB.ExecContext(ctx, query, a.Outcome, nullString(a.OutcomeNote), a.SentAt, a.ID)
	return err
}
