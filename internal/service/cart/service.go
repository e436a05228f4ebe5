package cart

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
	cartrepo "github.com/Teodagher/jove-jewelry-sub004/internal/repository/cart"
)

type Service struct {
	repo        cartRepo
	catalogRepo catalogRepo
}

type cartRepo interface {
	Create(ctx context.Context, token string) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, in cartrepo.AddLineInput) error
	ChangeLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error
	RemoveLine(ctx context.Context, cartID, lineID string) error
}

type catalogRepo interface {
	GetByProductType(ctx context.Context, productType domain.ProductType) (*domain.JewelryItem, error)
}

func New(repo cartRepo, catalogRepo catalogRepo) *Service {
	return &Service{repo: repo, catalogRepo: catalogRepo}
}

// AddLineInput is the customer's add-to-cart request: a product type, the
// customization state to freeze, and a quantity.
type AddLineInput struct {
	ProductType string                    `json:"productType"`
	State       domain.CustomizationState `json:"customization"`
	Quantity    int                       `json:"quantity"`
}

// Create opens a cart owned by a fresh anonymous token. The token is the
// only credential for later cart operations.
func (s *Service) Create(ctx context.Context) (*domain.Cart, string, error) {
	token, err := randomToken()
	if err != nil {
		return nil, "", err
	}
	cart, err := s.repo.Create(ctx, token)
	if err != nil {
		return nil, "", err
	}
	return cart, token, nil
}

func (s *Service) Get(ctx context.Context, cartID, token string) (*domain.Cart, error) {
	return s.ownedCart(ctx, cartID, token)
}

// AddLine prices the customization against the current catalog and freezes
// the result on the new line. The stored snapshot never re-prices.
func (s *Service) AddLine(ctx context.Context, cartID, token string, in AddLineInput) (*domain.Cart, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", domain.ErrValidation)
	}
	cart, err := s.ownedCart(ctx, cartID, token)
	if err != nil {
		return nil, err
	}
	if cart.State != "active" {
		return nil, fmt.Errorf("cart is %s: %w", cart.State, domain.ErrValidation)
	}

	productType := domain.ProductType(strings.ToLower(strings.TrimSpace(in.ProductType)))
	item, err := s.catalogRepo.GetByProductType(ctx, productType)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.ComputePrice(*item, in.State)
	if err != nil {
		return nil, err
	}

	if err := s.repo.AddLine(ctx, cartID, cartrepo.AddLineInput{
		ItemID:          item.ID,
		ProductType:     item.ProductType,
		Snapshot:        in.State.Clone(),
		BasePriceCents:  quote.BasePriceCents,
		TotalPriceCents: quote.TotalCents,
		Quantity:        in.Quantity,
	}); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, cartID)
}

func (s *Service) ChangeLineQuantity(ctx context.Context, cartID, token, lineID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", domain.ErrValidation)
	}
	if _, err := s.ownedCart(ctx, cartID, token); err != nil {
		return nil, err
	}
	if err := s.repo.ChangeLineQuantity(ctx, cartID, lineID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, cartID)
}

func (s *Service) RemoveLine(ctx context.Context, cartID, token, lineID string) (*domain.Cart, error) {
	if _, err := s.ownedCart(ctx, cartID, token); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveLine(ctx, cartID, lineID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, cartID)
}

// ownedCart hides carts from callers holding the wrong token.
func (s *Service) ownedCart(ctx context.Context, cartID, token string) (*domain.Cart, error) {
	cart, err := s.repo.GetByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	if token == "" || cart.Token != token {
		return nil, domain.ErrNotFound
	}
	return cart, nil
}

func randomToken() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
