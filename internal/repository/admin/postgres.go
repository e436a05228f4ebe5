package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
SELECT id::text, email, password_hash, created_at
FROM admin_users
WHERE email = $1
`
	var u User
	if err := r.pool.QueryRow(ctx, q, normalizeEmail(email)).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *postgresRepo) Create(ctx context.Context, email, passwordHash string) (*User, error) {
	const q = `
INSERT INTO admin_users (email, password_hash)
VALUES ($1, $2)
ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
RETURNING id::text, email, password_hash, created_at
`
	var u User
	if err := r.pool.QueryRow(ctx, q, normalizeEmail(email), passwordHash).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
