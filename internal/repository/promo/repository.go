package promo

import (
	"context"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// UpsertInput carries the admin-entered promo fields.
type UpsertInput struct {
	Code   string
	Spec   domain.DiscountSpec
	Active bool
}

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
	List(ctx context.Context) ([]domain.PromoCode, error)
	Create(ctx context.Context, in UpsertInput) (*domain.PromoCode, error)
	Update(ctx context.Context, id string, in UpsertInput) (*domain.PromoCode, error)
	Delete(ctx context.Context, id string) error
}
