package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PasswordReset is the ephemeral row tracking an in-flight reset request.
// At most one live row exists per email: Create removes prior rows first.
type PasswordReset struct {
	ID        int64
	Email     string
	Code      int
	CreatedAt time.Time
}

// PasswordResetRepository manages password reset request persistence.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *PasswordReset) error
	GetByIDAndCode(ctx context.Context, id int64, code int) (*PasswordReset, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByIDAndEmail(ctx context.Context, id int64, email string) error
}

type passwordResetRepository struct {
	pool *pgxpool.Pool
}

// NewPasswordResetRepository constructs repository.
func NewPasswordResetRepository(pool *pgxpool.Pool) PasswordResetRepository {
	return &passwordResetRepository{pool: pool}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *PasswordReset) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`DELETE FROM password_resets WHERE email=$1`,
		reset.Email,
	); err != nil {
		return err
	}

	const insert = `
        INSERT INTO password_resets (email, code, created_at)
        VALUES ($1,$2,$3)
        RETURNING id`
	if err := tx.QueryRow(ctx, insert,
		reset.Email,
		reset.Code,
		reset.CreatedAt,
	).Scan(&reset.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *passwordResetRepository) GetByIDAndCode(ctx context.Context, id int64, code int) (*PasswordReset, error) {
	const query = `
        SELECT id, email, code, created_at
        FROM password_resets WHERE id=$1 AND code=$2`
	var reset PasswordReset
	if err := r.pool.QueryRow(ctx, query, id, code).Scan(
		&reset.ID,
		&reset.Email,
		&reset.Code,
		&reset.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *passwordResetRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM password_resets WHERE id=$1`, id)
	return err
}

func (r *passwordResetRepository) DeleteByIDAndEmail(ctx context.Context, id int64, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM password_resets WHERE id=$1 AND email=$2`, id, email)
	return err
}
