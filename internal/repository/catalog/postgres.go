package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

const itemColumns = `id::text, product_type, name, base_price_cents, base_price_lab_grown_cents, base_price_onyx_cents, base_price_onyx_lab_grown_cents, created_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.JewelryItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM jewelry_items ORDER BY product_type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.JewelryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *postgresRepo) GetByProductType(ctx context.Context, productType domain.ProductType) (*domain.JewelryItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM jewelry_items WHERE product_type = $1`, string(productType))
	return r.getWithTree(ctx, row)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.JewelryItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM jewelry_items WHERE id = $1`, id)
	return r.getWithTree(ctx, row)
}

func (r *postgresRepo) getWithTree(ctx context.Context, row pgx.Row) (*domain.JewelryItem, error) {
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := r.loadSettings(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func scanItem(row pgx.Row) (*domain.JewelryItem, error) {
	var item domain.JewelryItem
	if err := row.Scan(
		&item.ID,
		&item.ProductType,
		&item.Name,
		&item.BasePriceCents,
		&item.BasePriceLabGrownCents,
		&item.BasePriceOnyxCents,
		&item.BasePriceOnyxLabGrownCents,
		&item.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *postgresRepo) loadSettings(ctx context.Context, item *domain.JewelryItem) error {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, item_id::text, key, title, mode, required
FROM customization_settings
WHERE item_id = $1
ORDER BY position, key
`, item.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	index := map[string]int{}
	for rows.Next() {
		var s domain.CustomizationSetting
		if err := rows.Scan(&s.ID, &s.ItemID, &s.Key, &s.Title, &s.Mode, &s.Required); err != nil {
			return err
		}
		index[s.ID] = len(item.Settings)
		item.Settings = append(item.Settings, s)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(item.Settings) == 0 {
		return nil
	}

	optRows, err := r.pool.Query(ctx, `
SELECT o.id::text, o.setting_id::text, o.key, o.name, o.price_cents, o.price_lab_grown_cents
FROM customization_options o
JOIN customization_settings s ON s.id = o.setting_id
WHERE s.item_id = $1
ORDER BY o.position, o.key
`, item.ID)
	if err != nil {
		return err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o domain.CustomizationOption
		if err := optRows.Scan(&o.ID, &o.SettingID, &o.Key, &o.Name, &o.PriceCents, &o.PriceLabGrownCents); err != nil {
			return err
		}
		if i, ok := index[o.SettingID]; ok {
			item.Settings[i].Options = append(item.Settings[i].Options, o)
		}
	}
	return optRows.Err()
}

// Upsert replaces an item's whole customization tree in one transaction.
// Settings/options are re-created from the input, so removed options
// disappear; cart snapshots are unaffected because they are frozen copies.
func (r *postgresRepo) Upsert(ctx context.Context, item domain.JewelryItem) (*domain.JewelryItem, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var itemID string
	err = tx.QueryRow(ctx, `
INSERT INTO jewelry_items (product_type, name, base_price_cents, base_price_lab_grown_cents, base_price_onyx_cents, base_price_onyx_lab_grown_cents)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (product_type) DO UPDATE
SET name = EXCLUDED.name,
    base_price_cents = EXCLUDED.base_price_cents,
    base_price_lab_grown_cents = EXCLUDED.base_price_lab_grown_cents,
    base_price_onyx_cents = EXCLUDED.base_price_onyx_cents,
    base_price_onyx_lab_grown_cents = EXCLUDED.base_price_onyx_lab_grown_cents
RETURNING id::text
`, string(item.ProductType), item.Name, item.BasePriceCents, item.BasePriceLabGrownCents, item.BasePriceOnyxCents, item.BasePriceOnyxLabGrownCents).Scan(&itemID)
	if err != nil {
		return nil, fmt.Errorf("upsert item: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM customization_settings WHERE item_id = $1`, itemID); err != nil {
		return nil, fmt.Errorf("clear settings: %w", err)
	}

	for si, setting := range item.Settings {
		var settingID string
		err = tx.QueryRow(ctx, `
INSERT INTO customization_settings (item_id, key, title, mode, required, position)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text
`, itemID, setting.Key, setting.Title, string(setting.Mode), setting.Required, si).Scan(&settingID)
		if err != nil {
			return nil, fmt.Errorf("insert setting %s: %w", setting.Key, err)
		}
		for oi, opt := range setting.Options {
			if _, err := tx.Exec(ctx, `
INSERT INTO customization_options (setting_id, key, name, price_cents, price_lab_grown_cents, position)
VALUES ($1, $2, $3, $4, $5, $6)
`, settingID, opt.Key, opt.Name, opt.PriceCents, opt.PriceLabGrownCents, oi); err != nil {
				return nil, fmt.Errorf("insert option %s: %w", opt.Key, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	if r.logger != nil {
		r.logger.Printf("catalog upsert: %s (%d settings)", item.ProductType, len(item.Settings))
	}
	return r.GetByID(ctx, itemID)
}
