package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	cartrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/cart"
)

type stubRepo struct {
	createCart    *domain.Cart
	createErr     error
	carts         map[string]*domain.Cart
	addLineErr    error
	lastAddCartID string
	lastAddLine   cartrepo.AddLineInput
	lastChangeQty int
	lastRemoveID  string
}

func (s *stubRepo) Create(_ context.Context, token string) (*domain.Cart, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	cart := s.createCart
	if cart == nil {
		cart = &domain.Cart{ID: "c1", State: "active"}
	}
	cart.Token = token
	return cart, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Cart, error) {
	if cart, ok := s.carts[id]; ok {
		return cart, nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) AddLine(_ context.Context, cartID string, in cartrepo.AddLineInput) error {
	s.lastAddCartID = cartID
	s.lastAddLine = in
	return s.addLineErr
}

func (s *stubRepo) ChangeLineQuantity(_ context.Context, _, _ string, quantity int) error {
	s.lastChangeQty = quantity
	return nil
}

func (s *stubRepo) RemoveLine(_ context.Context, _, lineID string) error {
	s.lastRemoveID = lineID
	return nil
}

type stubCatalog struct {
	item *domain.JewelryItem
	err  error
}

func (s *stubCatalog) GetByProductType(_ context.Context, _ domain.ProductType) (*domain.JewelryItem, error) {
	return s.item, s.err
}

func testItem() *domain.JewelryItem {
	return &domain.JewelryItem{
		ID:             "item-1",
		ProductType:    domain.ProductRing,
		BasePriceCents: 50000,
		Settings: []domain.CustomizationSetting{
			{
				ID: "set-metal", Key: "metal", Mode: domain.ModeSingle, Required: true,
				Options: []domain.CustomizationOption{
					{ID: "opt-yg", Key: "yellow_gold", PriceCents: 5000},
				},
			},
		},
	}
}

func TestServiceCreateIssuesToken(t *testing.T) {
	svc := New(&stubRepo{}, &stubCatalog{})
	cart, token, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" || cart.Token != token {
		t.Fatalf("expected cart bound to a fresh token, got cart token %q, token %q", cart.Token, token)
	}
}

func TestServiceGetChecksOwnership(t *testing.T) {
	repo := &stubRepo{carts: map[string]*domain.Cart{
		"c1": {ID: "c1", Token: "tok", State: "active"},
	}}
	svc := New(repo, &stubCatalog{})

	if _, err := svc.Get(context.Background(), "c1", "tok"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), "c1", "wrong"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for wrong token, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "c1", ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for empty token, got %v", err)
	}
}

func TestServiceAddLineFreezesQuote(t *testing.T) {
	repo := &stubRepo{carts: map[string]*domain.Cart{
		"c1": {ID: "c1", Token: "tok", State: "active"},
	}}
	svc := New(repo, &stubCatalog{item: testItem()})

	state := domain.CustomizationState{Selections: map[string][]string{"set-metal": {"opt-yg"}}}
	_, err := svc.AddLine(context.Background(), "c1", "tok", AddLineInput{
		ProductType: "ring",
		State:       state,
		Quantity:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.lastAddCartID != "c1" {
		t.Fatalf("expected add on cart c1, got %q", repo.lastAddCartID)
	}
	line := repo.lastAddLine
	if line.BasePriceCents != 50000 || line.TotalPriceCents != 55000 || line.Quantity != 2 {
		t.Fatalf("unexpected frozen line %+v", line)
	}

	// Mutating the caller's state must not reach the frozen snapshot.
	state.Selections["set-metal"][0] = "opt-other"
	if line.Snapshot.Selections["set-metal"][0] != "opt-yg" {
		t.Fatalf("snapshot aliases caller state")
	}
}

func TestServiceAddLineValidation(t *testing.T) {
	repo := &stubRepo{carts: map[string]*domain.Cart{
		"c1": {ID: "c1", Token: "tok", State: "active"},
	}}
	svc := New(repo, &stubCatalog{item: testItem()})

	_, err := svc.AddLine(context.Background(), "c1", "tok", AddLineInput{ProductType: "ring", Quantity: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}

	// Required metal setting missing: the pricing engine rejects the state.
	_, err = svc.AddLine(context.Background(), "c1", "tok", AddLineInput{
		ProductType: "ring",
		State:       domain.CustomizationState{},
		Quantity:    1,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing selection, got %v", err)
	}
}

func TestServiceAddLineInactiveCart(t *testing.T) {
	repo := &stubRepo{carts: map[string]*domain.Cart{
		"c1": {ID: "c1", Token: "tok", State: "ordered"},
	}}
	svc := New(repo, &stubCatalog{item: testItem()})

	_, err := svc.AddLine(context.Background(), "c1", "tok", AddLineInput{
		ProductType: "ring",
		State:       domain.CustomizationState{Selections: map[string][]string{"set-metal": {"opt-yg"}}},
		Quantity:    1,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for ordered cart, got %v", err)
	}
}

func TestServiceChangeQuantity(t *testing.T) {
	repo := &stubRepo{carts: map[string]*domain.Cart{
		"c1": {ID: "c1", Token: "tok", State: "active"},
	}}
	svc := New(repo, &stubCatalog{})

	if _, err := svc.ChangeLineQuantity(context.Background(), "c1", "tok", "l1", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastChangeQty != 3 {
		t.Fatalf("expected quantity 3, got %d", repo.lastChangeQty)
	}

	if _, err := svc.ChangeLineQuantity(context.Background(), "c1", "tok", "l1", 0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for zero quantity, got %v", err)
	}
}
