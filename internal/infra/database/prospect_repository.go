package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/xavierca1/agents-outreach/internal/entity"
)

type ProspectRepository struct {
	DB *sql.DB
}

func NewProspectRepository(db *sql.DB) *ProspectRepository {
	return &ProspectRepository{DB: db}
}

func (r *ProspectRepository) Create(ctx context.Context, p *entity.Prospect) error {
	query := `
		INSERT INTO prospects (
			id, account_id, company, contact_name, role, email, linkedin,
			industry, pain_points, context, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.AccountID,
		p.Company,
		p.ContactName,
		nullString(p.Role),
		nullString(p.Email),
		nullString(p.Linkedin),
		nullString(p.Industry),
		p.PainPoints,
		nullString(p.Context),
		p.Status,
		p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao criar prospecto: %w", err)
	}

	return nil
}

// FindByID devolve (nil, nil) quando não existe: quem decide o que fazer
// com a ausência é o usecase (colapsa em ownership error).
func (r *ProspectRepository) FindByID(ctx context.Context, id string) (*entity.Prospect, error) {
	query := `
		SELECT id, account_id, company, contact_name,
		       COALESCE(role, ''), COALESCE(email, ''), COALESCE(linkedin, ''),
		       COALESCE(industry, ''), pain_points, COALESCE(context, ''),
		       status, created_at
		FROM prospects
		WHERE id = $1
	`

	p := &entity.Prospect{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.AccountID, &p.Company, &p.ContactName,
		&p.Role, &p.Email, &p.Linkedin,
		&p.Industry, &p.PainPoints, &p.Context,
		&p.Status, &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *ProspectRepository) ListByAccount(ctx context.Context, accountID string) ([]*entity.Prospect, error) {
	query := `
		SELECT id, account_id, company, contact_name,
		       COALESCE(role, ''), COALESCE(email, ''), COALESCE(linkedin, ''),
		       COALESCE(industry, ''), pain_points, COALESCE(context, ''),
		       status, created_at
		FROM prospects
		WHERE account_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var prospects []*entity.Prospect
	for rows.Next() {
		p := &entity.Prospect{}
		if err := rows.Scan(
			&p.ID, &p.AccountID, &p.Company, &p.ContactName,
			&p.Role, &p.Email, &p.Linkedin,
			&p.Industry, &p.PainPoints, &p.Context,
			&p.Status, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		prospects = append(prospects, p)
	}

	return prospects, rows.Err()
}

func (r *ProspectRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE prospects SET status = $1 WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}

// Delete remove o prospecto e os intentos em cascata.
func (r *ProspectRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM outreach_attempts WHERE prospect_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM prospects WHERE id = $1`, id); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ProspectRepository) CountByAccount(ctx context.Context, accountID string, statuses ...string) (int, error) {
	var count int
	var err error

	if len(statuses) == 0 {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM prospects WHERE account_id = $1`,
			accountID,
		).Scan(&count)
	} else {
		err = r.DB.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM prospects WHERE account_id = $1 AND status = ANY($2)`,
			accountID, pq.Array(statuses),
		).Scan(&count)
	}

	return count, err
}
