package order

import (
	"context"
	"errors"

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

func (r *postgresRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var promoCode *string
	if o.PromoCode != "" {
		promoCode = &o.PromoCode
	}
	var email *string
	if o.Email != "" {
		email = &o.Email
	}

	var orderID string
	err = tx.QueryRow(ctx, `
INSERT INTO orders (subtotal_cents, delivery_fee_cents, promo_code, discount_cents, payout_cents, total_cents, market, email, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id::text
`, o.SubtotalCents, o.DeliveryFeeCents, promoCode, o.DiscountCents, o.PayoutCents, o.TotalCents, string(o.Market), email, string(o.Status)).Scan(&orderID)
	if err != nil {
		return nil, err
	}

	for i := range o.Lines {
		line := &o.Lines[i]
		err = tx.QueryRow(ctx, `
INSERT INTO order_lines (order_id, item_id, product_type, customization, base_price_cents, total_price_cents, quantity, subtotal_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text
`, orderID, line.ItemID, string(line.ProductType), line.Snapshot, line.BasePriceCents, line.TotalPriceCents, line.Quantity, line.SubtotalCents).Scan(&line.ID)
		if err != nil {
			return nil, err
		}
		line.OrderID = orderID
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

const orderColumns = `id::text, subtotal_cents, delivery_fee_cents, COALESCE(promo_code, ''), discount_cents, payout_cents, total_cents, market, COALESCE(email, ''), status, created_at`

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, order_id::text, item_id::text, product_type, customization, base_price_cents, total_price_cents, quantity, subtotal_cents
FROM order_lines
WHERE order_id = $1
ORDER BY id
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.OrderLineItem
		if err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ItemID,
			&line.ProductType,
			&line.Snapshot,
			&line.BasePriceCents,
			&line.TotalPriceCents,
			&line.Quantity,
			&line.SubtotalCents,
		); err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) PayoutReport(ctx context.Context) ([]PayoutRow, error) {
	rows, err := r.pool.Query(ctx, `
SELECT promo_code, COUNT(*), SUM(total_cents), SUM(payout_cents), SUM(discount_cents)
FROM orders
WHERE promo_code IS NOT NULL
GROUP BY promo_code
ORDER BY SUM(payout_cents) DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var report []PayoutRow
	for rows.Next() {
		var row PayoutRow
		if err := rows.Scan(&row.PromoCode, &row.Orders, &row.SalesCents, &row.PayoutOwedCents, &row.DiscountedCents); err != nil {
			return nil, err
		}
		report = append(report, row)
	}
	return report, rows.Err()
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var o domain.Order
	if err := row.Scan(
		&o.ID,
		&o.SubtotalCents,
		&o.DeliveryFeeCents,
		&o.PromoCode,
		&o.DiscountCents,
		&o.PayoutCents,
		&o.TotalCents,
		&o.Market,
		&o.Email,
		&o.Status,
		&o.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}
