package domain

// Market is a storefront region. It determines display currency and the
// flat delivery fee; the authoritative lookup tables live in the currency
// package.
type Market string

const (
	MarketUS Market = "us"
	MarketEU Market = "eu"
	MarketGB Market = "gb"
	MarketAE Market = "ae"
	MarketSA Market = "sa"
	MarketQA Market = "qa"
	MarketLB Market = "lb"
)
