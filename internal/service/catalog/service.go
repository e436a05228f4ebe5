package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
)

type Service struct {
	repo repo
}

type repo interface {
	List(ctx context.Context) ([]domain.JewelryItem, error)
	GetByProductType(ctx context.Context, productType domain.ProductType) (*domain.JewelryItem, error)
	Upsert(ctx context.Context, item domain.JewelryItem) (*domain.JewelryItem, error)
}

func New(r repo) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]domain.JewelryItem, error) {
	return s.repo.List(ctx)
}

// Get returns the full option catalog view for a product type.
func (s *Service) Get(ctx context.Context, productType string) (*domain.JewelryItem, error) {
	pt, err := parseProductType(productType)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByProductType(ctx, pt)
}

// Quote prices a customization state against the current catalog view.
func (s *Service) Quote(ctx context.Context, productType string, state domain.CustomizationState) (*pricing.Quote, error) {
	item, err := s.Get(ctx, productType)
	if err != nil {
		return nil, err
	}
	return pricing.ComputePrice(*item, state)
}

// Upsert validates and stores an admin-edited item tree.
func (s *Service) Upsert(ctx context.Context, item domain.JewelryItem) (*domain.JewelryItem, error) {
	if _, err := parseProductType(string(item.ProductType)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(item.Name) == "" {
		return nil, fmt.Errorf("item name required: %w", domain.ErrValidation)
	}
	if item.BasePriceCents < 0 {
		return nil, fmt.Errorf("negative base price: %w", domain.ErrValidation)
	}
	for _, setting := range item.Settings {
		if strings.TrimSpace(setting.Key) == "" {
			return nil, fmt.Errorf("setting key required: %w", domain.ErrValidation)
		}
		if setting.Mode != domain.ModeSingle && setting.Mode != domain.ModeMultiple {
			return nil, fmt.Errorf("setting %q has unknown mode %q: %w", setting.Key, setting.Mode, domain.ErrValidation)
		}
		if len(setting.Options) == 0 {
			return nil, fmt.Errorf("setting %q has no options: %w", setting.Key, domain.ErrValidation)
		}
		for _, opt := range setting.Options {
			if strings.TrimSpace(opt.Key) == "" {
				return nil, fmt.Errorf("option key required in setting %q: %w", setting.Key, domain.ErrValidation)
			}
		}
	}
	return s.repo.Upsert(ctx, item)
}

func parseProductType(v string) (domain.ProductType, error) {
	switch pt := domain.ProductType(strings.ToLower(strings.TrimSpace(v))); pt {
	case domain.ProductRing, domain.ProductNecklace, domain.ProductBracelet, domain.ProductEarring:
		return pt, nil
	default:
		return "", fmt.Errorf("unknown product type %q: %w", v, domain.ErrValidation)
	}
}
