package seed

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
	catalogrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/catalog"
	"github.com/Teodagher/jove-jewelry-sub004/internal/service/auth"
)

func cents(v int64) *int64 { return &v }

// Apply inserts demo catalog, promo, and admin data for manual testing.
// It is idempotent: items upsert by product type, the promo and admin by
// their unique keys.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	repo := catalogrepo.NewPostgres(pool, logger)

	for _, item := range demoItems() {
		if _, err := repo.Upsert(ctx, item); err != nil {
			return fmt.Errorf("upsert item %s: %w", item.ProductType, err)
		}
	}

	if err := seedPromo(ctx, pool); err != nil {
		return fmt.Errorf("seed promo: %w", err)
	}
	if err := seedAdmin(ctx, pool); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}

func demoItems() []domain.JewelryItem {
	return []domain.JewelryItem{
		{
			ProductType:                domain.ProductRing,
			Name:                       "Signature Solitaire Ring",
			BasePriceCents:             50000,
			BasePriceLabGrownCents:     cents(45000),
			BasePriceOnyxCents:         cents(42000),
			BasePriceOnyxLabGrownCents: cents(39000),
			Settings: []domain.CustomizationSetting{
				{
					Key: "metal", Title: "Metal", Mode: domain.ModeSingle, Required: true,
					Options: []domain.CustomizationOption{
						{Key: "yellow_gold", Name: "Yellow Gold", PriceCents: 5000},
						{Key: "white_gold", Name: "White Gold", PriceCents: 5500},
						{Key: "rose_gold", Name: "Rose Gold", PriceCents: 5200},
					},
				},
				{
					Key: pricing.StoneColorSettingKey, Title: "Center Stone", Mode: domain.ModeSingle, Required: true,
					Options: []domain.CustomizationOption{
						{Key: "clear", Name: "Clear Diamond", PriceCents: 0},
						{Key: pricing.BlackOnyxOptionKey, Name: "Black Onyx", PriceCents: 0},
					},
				},
				{
					Key: "side_stones", Title: "Side Stones", Mode: domain.ModeMultiple,
					Options: []domain.CustomizationOption{
						{Key: "emerald", Name: "Emerald", PriceCents: 8000, PriceLabGrownCents: cents(7000)},
						{Key: "sapphire", Name: "Sapphire", PriceCents: 6000},
						{Key: "ruby", Name: "Ruby", PriceCents: 7500, PriceLabGrownCents: cents(6800)},
					},
				},
			},
		},
		{
			ProductType:            domain.ProductNecklace,
			Name:                   "Pendant Necklace",
			BasePriceCents:         32000,
			BasePriceLabGrownCents: cents(29000),
			Settings: []domain.CustomizationSetting{
				{
					Key: "metal", Title: "Chain Metal", Mode: domain.ModeSingle, Required: true,
					Options: []domain.CustomizationOption{
						{Key: "yellow_gold", Name: "Yellow Gold", PriceCents: 4000},
						{Key: "white_gold", Name: "White Gold", PriceCents: 4500},
					},
				},
				{
					Key: "chain_length", Title: "Chain Length", Mode: domain.ModeSingle,
					Options: []domain.CustomizationOption{
						{Key: "41cm", Name: "41 cm", PriceCents: 0},
						{Key: "46cm", Name: "46 cm", PriceCents: 1500},
					},
				},
			},
		},
	}
}

func seedPromo(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO promo_codes (code, discount_kind, discount_value, payout_kind, payout_value, active)
VALUES ('LAUNCH10', 'percentage', 10, 'percentage_of_sale', 10, TRUE)
ON CONFLICT (code) DO UPDATE
SET discount_kind = EXCLUDED.discount_kind,
    discount_value = EXCLUDED.discount_value,
    payout_kind = EXCLUDED.payout_kind,
    payout_value = EXCLUDED.payout_value,
    active = EXCLUDED.active
`
	_, err := pool.Exec(ctx, q)
	return err
}

func seedAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "changeme"
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO admin_users (email, password_hash)
VALUES ('admin@jove.test', $1)
ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash
`
	_, err = pool.Exec(ctx, q, hash)
	return err
}
