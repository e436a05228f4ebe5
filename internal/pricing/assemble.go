package pricing

import (
	"fmt"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// AssembleOrder combines frozen line snapshots, the delivery fee, and an
// optional discount into an order aggregate. It never re-derives line
// prices from the current catalog; price integrity is fixed at the time
// each line was added to the cart.
func AssembleOrder(lines []domain.OrderLineItem, deliveryFeeCents int64, spec *domain.DiscountSpec) (*domain.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order has no line items: %w", domain.ErrValidation)
	}
	if deliveryFeeCents < 0 {
		return nil, fmt.Errorf("negative delivery fee: %w", domain.ErrValidation)
	}

	var subtotal int64
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("line %s has non-positive quantity: %w", line.ItemID, domain.ErrValidation)
		}
		subtotal += line.SubtotalCents
	}

	var discount int64
	if spec != nil {
		var err error
		discount, err = ComputeDiscount(*spec, subtotal)
		if err != nil {
			return nil, err
		}
	}

	total := subtotal + deliveryFeeCents - discount
	if total < 0 {
		return nil, fmt.Errorf("order total %d is negative: %w", total, domain.ErrInvalidOrder)
	}

	return &domain.Order{
		Lines:            lines,
		SubtotalCents:    subtotal,
		DeliveryFeeCents: deliveryFeeCents,
		DiscountCents:    discount,
		TotalCents:       total,
		Status:           domain.OrderPending,
	}, nil
}
