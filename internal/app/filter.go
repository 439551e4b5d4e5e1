package app

import (
	"strconv"

	"github.com/samber/lo"

	"hbnb_web/internal/domain"
)

// PriceTiers are the fixed options offered by the listing filter control.
var PriceTiers = []string{"all", "10", "50", "100"}

// Visible reports whether a card with the given nightly price stays shown
// under the selected tier. "all" and unknown tiers keep everything.
func Visible(tier string, price float64) bool {
	limit, err := strconv.ParseFloat(tier, 64)
	if err != nil {
		return true
	}
	return price <= limit
}

// ApplyTier filters already-fetched cards. Changing the tier re-runs this
// predicate over the materialized slice; it never issues a backend call.
func ApplyTier(tier string, cards []domain.PlaceCard) []domain.PlaceCard {
	return lo.Filter(cards, func(c domain.PlaceCard, _ int) bool {
		return Visible(tier, c.Price)
	})
}
