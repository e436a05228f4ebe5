package cart

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

func (r *postgresRepo) Create(ctx context.Context, token string) (*domain.Cart, error) {
	const q = `
INSERT INTO carts (token, state, total_cents)
VALUES ($1, 'active', 0)
RETURNING id::text, token, state, total_cents, created_at
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, token).Scan(
		&cart.ID,
		&cart.Token,
		&cart.State,
		&cart.TotalCents,
		&cart.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	const q = `
SELECT id::text, token, state, total_cents, created_at
FROM carts
WHERE id = $1
`
	var cart domain.Cart
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&cart.ID,
		&cart.Token,
		&cart.State,
		&cart.TotalCents,
		&cart.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, cart_id::text, item_id::text, product_type, customization, base_price_cents, total_price_cents, quantity, subtotal_cents, created_at
FROM cart_lines
WHERE cart_id = $1
ORDER BY created_at
`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(
			&line.ID,
			&line.CartID,
			&line.ItemID,
			&line.ProductType,
			&line.Snapshot,
			&line.BasePriceCents,
			&line.TotalPriceCents,
			&line.Quantity,
			&line.SubtotalCents,
			&line.CreatedAt,
		); err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) AddLine(ctx context.Context, cartID string, in AddLineInput) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	subtotal := in.TotalPriceCents * int64(in.Quantity)
	if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (cart_id, item_id, product_type, customization, base_price_cents, total_price_cents, quantity, subtotal_cents)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, cartID, in.ItemID, string(in.ProductType), in.Snapshot, in.BasePriceCents, in.TotalPriceCents, in.Quantity, subtotal); err != nil {
		return err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) ChangeLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
UPDATE cart_lines
SET quantity = $1, subtotal_cents = total_price_cents * $1
WHERE id = $2 AND cart_id = $3
`, quantity, lineID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveLine(ctx context.Context, cartID, lineID string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE id = $1 AND cart_id = $2`, lineID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *postgresRepo) SetState(ctx context.Context, cartID, state string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE carts SET state = $1 WHERE id = $2`, state, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID string) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_cents = COALESCE((SELECT SUM(subtotal_cents) FROM cart_lines WHERE cart_id = $1), 0)
WHERE id = $1
`, cartID)
	return err
}
