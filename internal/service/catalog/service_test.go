package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

type stubRepo struct {
	items      []domain.JewelryItem
	item       *domain.JewelryItem
	getErr     error
	upserted   *domain.JewelryItem
	upsertErr  error
	lastUpsert domain.JewelryItem
}

func (s *stubRepo) List(_ context.Context) ([]domain.JewelryItem, error) {
	return s.items, nil
}

func (s *stubRepo) GetByProductType(_ context.Context, _ domain.ProductType) (*domain.JewelryItem, error) {
	return s.item, s.getErr
}

func (s *stubRepo) Upsert(_ context.Context, item domain.JewelryItem) (*domain.JewelryItem, error) {
	s.lastUpsert = item
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	if s.upserted != nil {
		return s.upserted, nil
	}
	return &item, nil
}

func validItem() domain.JewelryItem {
	return domain.JewelryItem{
		ProductType:    domain.ProductRing,
		Name:           "Solitaire",
		BasePriceCents: 50000,
		Settings: []domain.CustomizationSetting{
			{
				Key: "metal", Mode: domain.ModeSingle, Required: true,
				Options: []domain.CustomizationOption{{Key: "yellow_gold", Name: "Yellow Gold", PriceCents: 5000}},
			},
		},
	}
}

func TestGetRejectsUnknownProductType(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.Get(context.Background(), "tiara")
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetNormalizesProductType(t *testing.T) {
	repo := &stubRepo{item: &domain.JewelryItem{ID: "i1", ProductType: domain.ProductRing}}
	svc := New(repo)
	item, err := svc.Get(context.Background(), "  Ring ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != "i1" {
		t.Fatalf("unexpected item %+v", item)
	}
}

func TestQuotePricesAgainstCatalog(t *testing.T) {
	item := validItem()
	item.Settings[0].ID = "set-metal"
	item.Settings[0].Options[0].ID = "opt-yg"
	svc := New(&stubRepo{item: &item})

	quote, err := svc.Quote(context.Background(), "ring", domain.CustomizationState{
		Selections: map[string][]string{"set-metal": {"opt-yg"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalCents != 55000 {
		t.Fatalf("expected 55000, got %d", quote.TotalCents)
	}
}

func TestUpsertValidation(t *testing.T) {
	svc := New(&stubRepo{})

	tests := []struct {
		name   string
		mutate func(*domain.JewelryItem)
	}{
		{"unknown product type", func(i *domain.JewelryItem) { i.ProductType = "tiara" }},
		{"empty name", func(i *domain.JewelryItem) { i.Name = "  " }},
		{"negative base price", func(i *domain.JewelryItem) { i.BasePriceCents = -1 }},
		{"empty setting key", func(i *domain.JewelryItem) { i.Settings[0].Key = "" }},
		{"bad mode", func(i *domain.JewelryItem) { i.Settings[0].Mode = "triple" }},
		{"no options", func(i *domain.JewelryItem) { i.Settings[0].Options = nil }},
		{"empty option key", func(i *domain.JewelryItem) { i.Settings[0].Options[0].Key = " " }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			item := validItem()
			tc.mutate(&item)
			_, err := svc.Upsert(context.Background(), item)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestUpsertHappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	item := validItem()
	if _, err := svc.Upsert(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastUpsert.Name != "Solitaire" {
		t.Fatalf("expected upsert forwarded, got %+v", repo.lastUpsert)
	}
}
