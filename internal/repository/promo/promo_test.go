package promo

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/migrate"
)

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `TRUNCATE promo_codes CASCADE`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}

func TestPostgres_PromoCRUD(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	repo := NewPostgres(pool)

	created, err := repo.Create(ctx, UpsertInput{
		Code: "launch10",
		Spec: domain.DiscountSpec{
			Kind:        domain.DiscountPercentage,
			Value:       decimal.NewFromInt(10),
			PayoutKind:  domain.PayoutPercentageOfSale,
			PayoutValue: decimal.NewFromInt(10),
		},
		Active: true,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Code != "LAUNCH10" {
		t.Fatalf("expected normalized code, got %q", created.Code)
	}

	got, err := repo.GetByCode(ctx, " launch10 ")
	if err != nil {
		t.Fatalf("GetByCode: %v", err)
	}
	if !got.Spec.Value.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("expected value 10, got %s", got.Spec.Value)
	}
	if got.Spec.Kind != domain.DiscountPercentage || got.Spec.PayoutKind != domain.PayoutPercentageOfSale {
		t.Fatalf("unexpected spec %+v", got.Spec)
	}

	updated, err := repo.Update(ctx, created.ID, UpsertInput{
		Code: "LAUNCH10",
		Spec: domain.DiscountSpec{
			Kind:  domain.DiscountFixedAmount,
			Value: decimal.NewFromInt(50),
		},
		Active: false,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Active || updated.Spec.Kind != domain.DiscountFixedAmount {
		t.Fatalf("unexpected promo after update %+v", updated)
	}
	if updated.Spec.PayoutKind != domain.PayoutNone {
		t.Fatalf("expected payout defaulted to none, got %q", updated.Spec.PayoutKind)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 promo, got %d", len(list))
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByCode(ctx, "LAUNCH10"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := repo.Delete(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found on double delete, got %v", err)
	}
}
