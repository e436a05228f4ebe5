// Package currency holds the fixed market and exchange-rate tables and the
// display-price converter. Persisted prices stay in USD; conversion output
// is display-only and re-derived on every request.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// Converted is a display amount in a market's currency, in minor units.
type Converted struct {
	AmountCents  int64  `json:"amountCents"`
	CurrencyCode string `json:"currencyCode"`
}

// marketCurrencies maps each storefront region to its display currency.
// Every listed currency uses two minor digits.
var marketCurrencies = map[domain.Market]string{
	domain.MarketUS: "USD",
	domain.MarketEU: "EUR",
	domain.MarketGB: "GBP",
	domain.MarketAE: "AED",
	domain.MarketSA: "SAR",
	domain.MarketQA: "QAR",
	domain.MarketLB: "USD",
}

// usdRates expresses each currency as a multiplier of one USD.
var usdRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"EUR": decimal.RequireFromString("0.92"),
	"GBP": decimal.RequireFromString("0.79"),
	"AED": decimal.RequireFromString("3.6725"),
	"SAR": decimal.RequireFromString("3.75"),
	"QAR": decimal.RequireFromString("3.64"),
}

// deliveryFees is the flat per-market delivery fee in USD cents.
var deliveryFees = map[domain.Market]int64{
	domain.MarketUS: 1500,
	domain.MarketEU: 2500,
	domain.MarketGB: 2500,
	domain.MarketAE: 2000,
	domain.MarketSA: 2000,
	domain.MarketQA: 2000,
	domain.MarketLB: 500,
}

// Code resolves a market's display currency code.
func Code(market domain.Market) (string, error) {
	code, ok := marketCurrencies[market]
	if !ok {
		return "", fmt.Errorf("unknown market %q: %w", market, domain.ErrConfiguration)
	}
	return code, nil
}

// Convert maps a USD amount in cents to the market's display currency,
// rounding half-up to a cent. An unknown market or a missing rate is a
// deployment defect, never a silent fallback to USD.
func Convert(amountCents int64, market domain.Market) (Converted, error) {
	code, err := Code(market)
	if err != nil {
		return Converted{}, err
	}
	rate, ok := usdRates[code]
	if !ok {
		return Converted{}, fmt.Errorf("no exchange rate for %q: %w", code, domain.ErrConfiguration)
	}
	amount := decimal.NewFromInt(amountCents).Mul(rate).Round(0).IntPart()
	return Converted{AmountCents: amount, CurrencyCode: code}, nil
}

// DeliveryFee resolves the flat delivery fee for a market, in USD cents.
func DeliveryFee(market domain.Market) (int64, error) {
	fee, ok := deliveryFees[market]
	if !ok {
		return 0, fmt.Errorf("no delivery fee for market %q: %w", market, domain.ErrConfiguration)
	}
	return fee, nil
}
