package services

import (
	"errors"
	"math"

	"go-catering-management/models"
)

var (
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	ErrNoItemsSelected   = errors.New("at least one item must be selected")
)

type ItemSelection struct {
	Item_id  string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type QuoteItem struct {
	Item_id    string  `json:"item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Unit_price float64 `json:"unit_price"`
	Line_total float64 `json:"line_total"`
}

type Quote struct {
	Items            []QuoteItem `json:"items"`
	Guest_count      int         `json:"guest_count"`
	Subtotal         float64     `json:"subtotal"`
	Misc_cost        float64     `json:"misc_cost"`
	Discount_percent float64     `json:"discount_percent"`
	Discount_amount  float64     `json:"discount_amount"`
	Per_plate_cost   float64     `json:"per_plate_cost"`
	Total_cost       float64     `json:"total_cost"`
}

// SelectDiscountTier picks the tier with the largest min_guests among the
// tiers that qualify for the given guest count. Returns 0 when none qualify.
func SelectDiscountTier(tiers []models.PricingTier, guestCount int) float64 {
	bestMin := -1
	discount := 0.0
	for _, tier := range tiers {
		if tier.Min_guests <= guestCount && tier.Min_guests > bestMin {
			bestMin = tier.Min_guests
			discount = tier.Discount_percent
		}
	}
	return discount
}

// ComputeQuote resolves the selected items against the caterer's catalog and
// computes the price estimate. Items that are missing from the catalog or
// marked unavailable are dropped without raising an error.
func ComputeQuote(catalog []models.MenuItem, selections []ItemSelection, guestCount int, miscCost float64, tiers []models.PricingTier) (*Quote, error) {
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if len(selections) == 0 {
		return nil, ErrNoItemsSelected
	}

	byID := make(map[string]models.MenuItem, len(catalog))
	for _, item := range catalog {
		if item.Is_available != nil && !*item.Is_available {
			continue
		}
		byID[item.Menu_item_id] = item
	}

	quote := Quote{
		Guest_count: guestCount,
		Misc_cost:   miscCost,
	}
	for _, sel := range selections {
		item, ok := byID[sel.Item_id]
		if !ok {
			continue
		}
		name := ""
		if item.Name != nil {
			name = *item.Name
		}
		unitPrice := 0.0
		if item.Price != nil {
			unitPrice = *item.Price
		}
		lineTotal := unitPrice * float64(sel.Quantity) * float64(guestCount)
		quote.Items = append(quote.Items, QuoteItem{
			Item_id:    sel.Item_id,
			Name:       name,
			Quantity:   sel.Quantity,
			Unit_price: unitPrice,
			Line_total: lineTotal,
		})
		quote.Subtotal += lineTotal
	}

	quote.Discount_percent = SelectDiscountTier(tiers, guestCount)
	quote.Discount_amount = (quote.Subtotal + quote.Misc_cost) * quote.Discount_percent / 100

	total := quote.Subtotal + quote.Misc_cost - quote.Discount_amount
	if total < 0 {
		total = 0
	}
	quote.Total_cost = total

	// per-plate cost is display-only, rounded to 2 decimals
	quote.Per_plate_cost = math.Round(quote.Subtotal/float64(guestCount)*100) / 100

	return &quote, nil
}
