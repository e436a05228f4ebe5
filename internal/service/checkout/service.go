package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Teodagher/jove-jewelry-sub004/internal/currency"
	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
	"github.com/Teodagher/jove-jewelry-sub004/internal/pricing"
)

// Notifier delivers the order confirmation. The real sender lives outside
// this service (an email edge function); failures are logged, never fatal
// to the order.
type Notifier interface {
	OrderConfirmed(ctx context.Context, order domain.Order) error
}

type Service struct {
	carts    cartRepo
	orders   orderRepo
	promos   promoRepo
	notifier Notifier
	logger   *log.Logger
}

type cartRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
	SetState(ctx context.Context, cartID, state string) error
}

type orderRepo interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}

type promoRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

func New(carts cartRepo, orders orderRepo, promos promoRepo, notifier Notifier, logger *log.Logger) *Service {
	return &Service{carts: carts, orders: orders, promos: promos, notifier: notifier, logger: logger}
}

// Input is a checkout request for an existing cart.
type Input struct {
	CartID    string        `json:"cartId"`
	Token     string        `json:"-"`
	Market    domain.Market `json:"market"`
	Email     string        `json:"email"`
	PromoCode string        `json:"promoCode,omitempty"`
}

// Checkout assembles an order from the cart's frozen line snapshots,
// applies the promo if any, records the influencer payout, and retires the
// cart. Line prices are never re-derived from the catalog here.
func (s *Service) Checkout(ctx context.Context, in Input) (*domain.Order, error) {
	cart, err := s.carts.GetByID(ctx, in.CartID)
	if err != nil {
		return nil, err
	}
	if in.Token == "" || cart.Token != in.Token {
		return nil, domain.ErrNotFound
	}
	if cart.State != "active" {
		return nil, fmt.Errorf("cart already checked out: %w", domain.ErrValidation)
	}
	if len(cart.Lines) == 0 {
		return nil, fmt.Errorf("cart is empty: %w", domain.ErrValidation)
	}

	deliveryFee, err := currency.DeliveryFee(in.Market)
	if err != nil {
		return nil, err
	}

	var spec *domain.DiscountSpec
	promoCode := strings.ToUpper(strings.TrimSpace(in.PromoCode))
	if promoCode != "" {
		promo, err := s.promos.GetByCode(ctx, promoCode)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("unknown promo code %q: %w", promoCode, domain.ErrValidation)
			}
			return nil, err
		}
		if !promo.Active {
			return nil, fmt.Errorf("promo code %q is inactive: %w", promoCode, domain.ErrValidation)
		}
		spec = &promo.Spec
	}

	lines := make([]domain.OrderLineItem, 0, len(cart.Lines))
	for _, cl := range cart.Lines {
		lines = append(lines, domain.OrderLineItem{
			ItemID:          cl.ItemID,
			ProductType:     cl.ProductType,
			Snapshot:        cl.Snapshot.Clone(),
			BasePriceCents:  cl.BasePriceCents,
			TotalPriceCents: cl.TotalPriceCents,
			Quantity:        cl.Quantity,
			SubtotalCents:   cl.SubtotalCents,
		})
	}

	order, err := pricing.AssembleOrder(lines, deliveryFee, spec)
	if err != nil {
		return nil, err
	}
	order.Market = in.Market
	order.Email = strings.TrimSpace(in.Email)
	if spec != nil {
		order.PromoCode = promoCode
		order.PayoutCents = pricing.ComputePayout(*spec, order.SubtotalCents, order.DiscountCents)
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := s.carts.SetState(ctx, cart.ID, "ordered"); err != nil {
		s.logger.Printf("retire cart %s after order %s: %v", cart.ID, created.ID, err)
	}
	if s.notifier != nil {
		if err := s.notifier.OrderConfirmed(ctx, *created); err != nil {
			s.logger.Printf("order confirmation for %s: %v", created.ID, err)
		}
	}
	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// PreviewDiscount resolves a promo code against a subtotal without placing
// an order, for the cart page's discount preview.
func (s *Service) PreviewDiscount(ctx context.Context, code string, subtotalCents int64) (int64, *domain.PromoCode, error) {
	promo, err := s.promos.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return 0, nil, err
	}
	if !promo.Active {
		return 0, nil, fmt.Errorf("promo code %q is inactive: %w", promo.Code, domain.ErrValidation)
	}
	discount, err := pricing.ComputeDiscount(promo.Spec, subtotalCents)
	if err != nil {
		return 0, nil, err
	}
	return discount, promo, nil
}

// LogNotifier is the default Notifier: it records the confirmation instead
// of sending it, for environments without the email function configured.
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) OrderConfirmed(_ context.Context, order domain.Order) error {
	n.Logger.Printf("order %s confirmed: total %d cents, email %q", order.ID, order.TotalCents, order.Email)
	return nil
}
