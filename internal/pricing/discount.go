package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

var (
	hundred      = decimal.NewFromInt(100)
	centsPerUnit = decimal.NewFromInt(100)
)

// ComputeDiscount returns the discount owed in cents for an order total,
// clamped to [0, orderTotal]. Percentage values above 100 or negative spec
// values clamp rather than fail; an unrecognized discount kind is a typed
// error because it would silently change what the customer pays.
func ComputeDiscount(spec domain.DiscountSpec, orderTotalCents int64) (int64, error) {
	var raw decimal.Decimal
	switch spec.Kind {
	case domain.DiscountPercentage:
		raw = decimal.NewFromInt(orderTotalCents).Mul(spec.Value).Div(hundred)
	case domain.DiscountFixedAmount:
		raw = spec.Value.Mul(centsPerUnit)
	default:
		return 0, fmt.Errorf("unknown discount kind %q: %w", spec.Kind, domain.ErrValidation)
	}

	discount := roundCents(raw)
	if discount < 0 {
		return 0, nil
	}
	if max := orderTotalCents; discount > max {
		if max < 0 {
			return 0, nil
		}
		return max, nil
	}
	return discount, nil
}

// ComputePayout returns the influencer payout owed for an order, in cents.
// Payout is owed on the gross order total; the discount amount is accepted
// so callers pass both figures explicitly, but it never feeds the math.
// Payout is internal bookkeeping, so unrecognized kinds yield 0 instead of
// blocking the order.
func ComputePayout(spec domain.DiscountSpec, orderTotalCents, discountCents int64) int64 {
	var raw decimal.Decimal
	switch spec.PayoutKind {
	case domain.PayoutPercentageOfSale:
		raw = decimal.NewFromInt(orderTotalCents).Mul(spec.PayoutValue).Div(hundred)
	case domain.PayoutFixed:
		raw = spec.PayoutValue.Mul(centsPerUnit)
	default:
		return 0
	}
	payout := roundCents(raw)
	if payout < 0 {
		return 0
	}
	return payout
}

// roundCents rounds half-up to a whole cent.
func roundCents(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
