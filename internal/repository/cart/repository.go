package cart

import (
	"context"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// AddLineInput is the frozen, already-priced line to append to a cart.
type AddLineInput struct {
	ItemID          string
	ProductType     domain.ProductType
	Snapshot        domain.CustomizationState
	BasePriceCents  int64
	TotalPriceCents int64
	Quantity        int
}

type Repository interface {
	Create(ctx context.Context, token string) (*domain.Cart, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID string, in AddLineInput) error
	ChangeLineQuantity(ctx context.Context, cartID, lineID string, quantity int) error
	RemoveLine(ctx context.Context, cartID, lineID string) error
	SetState(ctx context.Context, cartID, state string) error
}
