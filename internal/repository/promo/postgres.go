package promo

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

const promoColumns = `id::text, code, discount_kind, discount_value, payout_kind, payout_value, active, created_at`

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.PromoCode, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+promoColumns+` FROM promo_codes WHERE code = $1`, normalizeCode(code))
	return scanPromo(row)
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.PromoCode, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+promoColumns+` FROM promo_codes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []domain.PromoCode
	for rows.Next() {
		p, err := scanPromo(rows)
		if err != nil {
			return nil, err
		}
		promos = append(promos, *p)
	}
	return promos, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in UpsertInput) (*domain.PromoCode, error) {
	row := r.pool.QueryRow(ctx, `
INSERT INTO promo_codes (code, discount_kind, discount_value, payout_kind, payout_value, active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+promoColumns, normalizeCode(in.Code), string(in.Spec.Kind), in.Spec.Value, string(payoutKindOrNone(in.Spec.PayoutKind)), in.Spec.PayoutValue, in.Active)
	return scanPromo(row)
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpsertInput) (*domain.PromoCode, error) {
	row := r.pool.QueryRow(ctx, `
UPDATE promo_codes
SET code = $1, discount_kind = $2, discount_value = $3, payout_kind = $4, payout_value = $5, active = $6
WHERE id = $7
RETURNING `+promoColumns, normalizeCode(in.Code), string(in.Spec.Kind), in.Spec.Value, string(payoutKindOrNone(in.Spec.PayoutKind)), in.Spec.PayoutValue, in.Active, id)
	return scanPromo(row)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM promo_codes WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanPromo(row pgx.Row) (*domain.PromoCode, error) {
	var p domain.PromoCode
	if err := row.Scan(
		&p.ID,
		&p.Code,
		&p.Spec.Kind,
		&p.Spec.Value,
		&p.Spec.PayoutKind,
		&p.Spec.PayoutValue,
		&p.Active,
		&p.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func payoutKindOrNone(kind domain.PayoutKind) domain.PayoutKind {
	if kind == "" {
		return domain.PayoutNone
	}
	return kind
}
