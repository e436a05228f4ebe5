package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountKind is the customer-facing discount mechanic.
type DiscountKind string

const (
	DiscountPercentage  DiscountKind = "percentage"
	DiscountFixedAmount DiscountKind = "fixed_amount"
)

// PayoutKind is the influencer attribution mechanic tied to a promo code.
type PayoutKind string

const (
	PayoutNone             PayoutKind = "none"
	PayoutPercentageOfSale PayoutKind = "percentage_of_sale"
	PayoutFixed            PayoutKind = "fixed"
)

// DiscountSpec is a resolved promo rule. Value is a percent for percentage
// kind and a USD dollar amount for fixed_amount; PayoutValue likewise per
// PayoutKind. Both stay decimal because admins enter fractional values.
type DiscountSpec struct {
	Kind        DiscountKind    `json:"kind"`
	Value       decimal.Decimal `json:"value"`
	PayoutKind  PayoutKind      `json:"payoutKind,omitempty"`
	PayoutValue decimal.Decimal `json:"payoutValue,omitempty"`
}

// PromoCode is the persisted admin-managed promo entry.
type PromoCode struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Spec      DiscountSpec `json:"spec"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"createdAt"`
}
