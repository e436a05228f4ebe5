package domain

import "time"

// Cart is an in-progress customization session owned by an anonymous token.
type Cart struct {
	ID         string     `json:"id"`
	Token      string     `json:"-"`
	State      string     `json:"state"`
	TotalCents int64      `json:"totalCents"`
	Lines      []CartLine `json:"lineItems,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// CartLine freezes a priced customization at add-to-cart time. The snapshot
// and prices are immutable afterwards; later catalog edits do not touch it.
type CartLine struct {
	ID              string             `json:"id"`
	CartID          string             `json:"cartId"`
	ItemID          string             `json:"itemId"`
	ProductType     ProductType        `json:"productType"`
	Snapshot        CustomizationState `json:"customization"`
	BasePriceCents  int64              `json:"basePriceCents"`
	TotalPriceCents int64              `json:"totalPriceCents"`
	Quantity        int                `json:"quantity"`
	SubtotalCents   int64              `json:"subtotalCents"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// OrderLineItem is the checkout-time copy of a cart line.
type OrderLineItem struct {
	ID              string             `json:"id"`
	OrderID         string             `json:"orderId,omitempty"`
	ItemID          string             `json:"itemId"`
	ProductType     ProductType        `json:"productType"`
	Snapshot        CustomizationState `json:"customization"`
	BasePriceCents  int64              `json:"basePriceCents"`
	TotalPriceCents int64              `json:"totalPriceCents"`
	Quantity        int                `json:"quantity"`
	SubtotalCents   int64              `json:"subtotalCents"`
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// Order is the assembled aggregate handed to payment processing.
// Invariant: TotalCents == sum(line subtotals) + DeliveryFeeCents - DiscountCents,
// with DiscountCents in [0, subtotal].
type Order struct {
	ID               string          `json:"id"`
	Lines            []OrderLineItem `json:"lineItems"`
	SubtotalCents    int64           `json:"subtotalCents"`
	DeliveryFeeCents int64           `json:"deliveryFeeCents"`
	PromoCode        string          `json:"promoCode,omitempty"`
	DiscountCents    int64           `json:"discountCents"`
	PayoutCents      int64           `json:"-"`
	TotalCents       int64           `json:"totalCents"`
	Market           Market          `json:"market"`
	Email            string          `json:"email,omitempty"`
	Status           OrderStatus     `json:"status"`
	CreatedAt        time.Time       `json:"createdAt"`
}
