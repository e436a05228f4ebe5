package catalog

import (
	"context"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// Repository provides the option catalog view consumed by the pricing
// engine, plus the admin-side upsert.
type Repository interface {
	List(ctx context.Context) ([]domain.JewelryItem, error)
	GetByProductType(ctx context.Context, productType domain.ProductType) (*domain.JewelryItem, error)
	GetByID(ctx context.Context, id string) (*domain.JewelryItem, error)
	Upsert(ctx context.Context, item domain.JewelryItem) (*domain.JewelryItem, error)
}
