package domain

import "time"

// ProductType identifies a jewelry category in the catalog.
type ProductType string

const (
	ProductRing     ProductType = "ring"
	ProductNecklace ProductType = "necklace"
	ProductBracelet ProductType = "bracelet"
	ProductEarring  ProductType = "earring"
)

// DiamondType selects between the two stone sourcing price tables.
type DiamondType string

const (
	DiamondNatural  DiamondType = "natural"
	DiamondLabGrown DiamondType = "lab_grown"
)

// SelectionMode is the cardinality of a customization setting.
type SelectionMode string

const (
	ModeSingle   SelectionMode = "single"
	ModeMultiple SelectionMode = "multiple"
)

// JewelryItem is an immutable catalog entry with its customization tree.
// Base price variants are nil when the item does not offer that variant.
type JewelryItem struct {
	ID                         string                 `json:"id"`
	ProductType                ProductType            `json:"productType"`
	Name                       string                 `json:"name"`
	BasePriceCents             int64                  `json:"basePriceCents"`
	BasePriceLabGrownCents     *int64                 `json:"basePriceLabGrownCents,omitempty"`
	BasePriceOnyxCents         *int64                 `json:"basePriceOnyxCents,omitempty"`
	BasePriceOnyxLabGrownCents *int64                 `json:"basePriceOnyxLabGrownCents,omitempty"`
	Settings                   []CustomizationSetting `json:"settings,omitempty"`
	CreatedAt                  time.Time              `json:"createdAt"`
}

// CustomizationSetting groups the options a customer picks from. Key is the
// admin-assigned slug used for recognition rules (e.g. "stone_color").
type CustomizationSetting struct {
	ID       string                `json:"id"`
	ItemID   string                `json:"-"`
	Key      string                `json:"key"`
	Title    string                `json:"title"`
	Mode     SelectionMode         `json:"mode"`
	Required bool                  `json:"required"`
	Options  []CustomizationOption `json:"options,omitempty"`
}

// CustomizationOption carries the natural price delta and, when the option
// has a lab-grown variant, that delta too. A nil PriceLabGrownCents means
// "no lab-grown variant", which is distinct from a zero lab-grown price.
type CustomizationOption struct {
	ID                 string `json:"id"`
	SettingID          string `json:"-"`
	Key                string `json:"key"`
	Name               string `json:"name"`
	PriceCents         int64  `json:"priceCents"`
	PriceLabGrownCents *int64 `json:"priceLabGrownCents,omitempty"`
}

// CustomizationState is a customer's in-progress choice set: one or more
// option IDs per setting ID, plus the diamond sourcing toggle. It is the
// wire/session form; validation against the catalog happens on resolve.
type CustomizationState struct {
	DiamondType DiamondType         `json:"diamondType,omitempty"`
	Selections  map[string][]string `json:"selections"`
}

// Clone returns a deep copy, so frozen snapshots never alias live state.
func (s CustomizationState) Clone() CustomizationState {
	out := CustomizationState{DiamondType: s.DiamondType}
	if s.Selections != nil {
		out.Selections = make(map[string][]string, len(s.Selections))
		for k, v := range s.Selections {
			ids := make([]string, len(v))
			copy(ids, v)
			out.Selections[k] = ids
		}
	}
	return out
}

func (s CustomizationState) LabGrown() bool {
	return s.DiamondType == DiamondLabGrown
}
