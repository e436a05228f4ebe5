package order

import (
	"context"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// PayoutRow is one line of the influencer payout report: everything owed
// against a promo code across its orders.
type PayoutRow struct {
	PromoCode        string `json:"promoCode"`
	Orders           int64  `json:"orders"`
	SalesCents       int64  `json:"salesCents"`
	PayoutOwedCents  int64  `json:"payoutOwedCents"`
	DiscountedCents  int64  `json:"discountedCents"`
}

type Repository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, limit, offset int) ([]domain.Order, error)
	PayoutReport(ctx context.Context) ([]PayoutRow, error)
}
