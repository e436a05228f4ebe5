package pricing

import (
	"fmt"

	"github.com/Teodagher/jove-jewelry-sub004/internal/domain"
)

// Recognized catalog keys that redirect the base price to the black-onyx
// variant fields. Admin tooling assigns these slugs when seeding the catalog.
const (
	StoneColorSettingKey = "stone_color"
	BlackOnyxOptionKey   = "black_onyx"
)

// QuoteLine is one priced selection within a quote.
type QuoteLine struct {
	SettingID   string `json:"settingId"`
	OptionID    string `json:"optionId"`
	AmountCents int64  `json:"amountCents"`
}

// Quote is the itemized result of pricing a customization state. All
// amounts are USD minor units.
type Quote struct {
	BasePriceCents int64       `json:"basePriceCents"`
	Lines          []QuoteLine `json:"lineItems"`
	TotalCents     int64       `json:"totalCents"`
}

type resolvedSetting struct {
	setting domain.CustomizationSetting
	options []domain.CustomizationOption
}

// ComputePrice prices a customization state against an item's catalog view.
// It is pure: same inputs always produce the same quote. Invalid states
// (missing required setting, unknown option, wrong cardinality) fail with
// domain.ErrValidation rather than pricing to zero.
func ComputePrice(item domain.JewelryItem, state domain.CustomizationState) (*Quote, error) {
	resolved, err := resolveState(item, state)
	if err != nil {
		return nil, err
	}

	labGrown := state.LabGrown()
	base := basePrice(item, labGrown, selectsBlackOnyx(resolved))

	quote := &Quote{BasePriceCents: base, TotalCents: base}
	for _, rs := range resolved {
		for _, opt := range rs.options {
			amount := opt.PriceCents
			if labGrown && opt.PriceLabGrownCents != nil {
				amount = *opt.PriceLabGrownCents
			}
			quote.Lines = append(quote.Lines, QuoteLine{
				SettingID:   rs.setting.ID,
				OptionID:    opt.ID,
				AmountCents: amount,
			})
			quote.TotalCents += amount
		}
	}
	return quote, nil
}

// ValidateState checks a customization state against the catalog view
// without pricing it, so callers can reject bad states before cart writes.
func ValidateState(item domain.JewelryItem, state domain.CustomizationState) error {
	_, err := resolveState(item, state)
	return err
}

// resolveState validates cardinality, required settings, and option
// membership, and returns the selections in catalog order.
func resolveState(item domain.JewelryItem, state domain.CustomizationState) ([]resolvedSetting, error) {
	switch state.DiamondType {
	case "", domain.DiamondNatural, domain.DiamondLabGrown:
	default:
		return nil, fmt.Errorf("unknown diamond type %q: %w", state.DiamondType, domain.ErrValidation)
	}

	known := make(map[string]struct{}, len(item.Settings))
	var resolved []resolvedSetting
	for _, setting := range item.Settings {
		known[setting.ID] = struct{}{}
		selected := state.Selections[setting.ID]

		if len(selected) == 0 {
			if setting.Required {
				return nil, fmt.Errorf("setting %q requires a selection: %w", setting.Key, domain.ErrValidation)
			}
			continue
		}
		if setting.Mode == domain.ModeSingle && len(selected) > 1 {
			return nil, fmt.Errorf("setting %q accepts a single option, got %d: %w", setting.Key, len(selected), domain.ErrValidation)
		}

		byID := make(map[string]domain.CustomizationOption, len(setting.Options))
		for _, opt := range setting.Options {
			byID[opt.ID] = opt
		}

		rs := resolvedSetting{setting: setting}
		seen := make(map[string]struct{}, len(selected))
		for _, optionID := range selected {
			opt, ok := byID[optionID]
			if !ok {
				return nil, fmt.Errorf("option %q not in setting %q: %w", optionID, setting.Key, domain.ErrValidation)
			}
			if _, dup := seen[optionID]; dup {
				return nil, fmt.Errorf("option %q selected twice in setting %q: %w", optionID, setting.Key, domain.ErrValidation)
			}
			seen[optionID] = struct{}{}
			rs.options = append(rs.options, opt)
		}
		resolved = append(resolved, rs)
	}

	for settingID := range state.Selections {
		if _, ok := known[settingID]; !ok {
			return nil, fmt.Errorf("setting %q not in catalog: %w", settingID, domain.ErrValidation)
		}
	}
	return resolved, nil
}

// basePrice picks exactly one base price source: black-onyx variants win
// over the plain base, and lab-grown variants win within each pair. A
// missing variant field falls back to the next defined source.
func basePrice(item domain.JewelryItem, labGrown, onyx bool) int64 {
	if onyx {
		if labGrown && item.BasePriceOnyxLabGrownCents != nil {
			return *item.BasePriceOnyxLabGrownCents
		}
		if item.BasePriceOnyxCents != nil {
			return *item.BasePriceOnyxCents
		}
	}
	if labGrown && item.BasePriceLabGrownCents != nil {
		return *item.BasePriceLabGrownCents
	}
	return item.BasePriceCents
}

func selectsBlackOnyx(resolved []resolvedSetting) bool {
	for _, rs := range resolved {
		if rs.setting.Key != StoneColorSettingKey {
			continue
		}
		for _, opt := range rs.options {
			if opt.Key == BlackOnyxOptionKey {
				return true
			}
		}
	}
	return false
}
