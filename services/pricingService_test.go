package services

import (
	"testing"

	"go-catering-management/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func menuItem(id string, name string, price float64, available bool) models.MenuItem {
	return models.MenuItem{
		ID:           primitive.NewObjectID(),
		Name:         &name,
		Price:        &price,
		Is_available: &available,
		Menu_item_id: id,
	}
}

func TestSelectDiscountTier(t *testing.T) {
	tiers := []models.PricingTier{
		{Min_guests: 10, Discount_percent: 5},
		{Min_guests: 50, Discount_percent: 10},
	}

	assert.Equal(t, 10.0, SelectDiscountTier(tiers, 60), "largest qualifying min wins")
	assert.Equal(t, 10.0, SelectDiscountTier(tiers, 50))
	assert.Equal(t, 5.0, SelectDiscountTier(tiers, 49))
	assert.Equal(t, 5.0, SelectDiscountTier(tiers, 10))
	assert.Equal(t, 0.0, SelectDiscountTier(tiers, 9), "no qualifying tier")
	assert.Equal(t, 0.0, SelectDiscountTier(nil, 100))
}

func TestComputeQuoteNoTiers(t *testing.T) {
	catalog := []models.MenuItem{
		menuItem("item-1", "Paneer Tikka", 120, true),
		menuItem("item-2", "Dal Makhani", 80, true),
	}
	selections := []ItemSelection{
		{Item_id: "item-1", Quantity: 1},
		{Item_id: "item-2", Quantity: 2},
	}

	quote, err := ComputeQuote(catalog, selections, 10, 500, nil)
	assert.NoError(t, err)
	// subtotal = 120*1*10 + 80*2*10
	assert.Equal(t, 2800.0, quote.Subtotal)
	assert.Equal(t, 0.0, quote.Discount_percent)
	assert.Equal(t, quote.Subtotal+quote.Misc_cost, quote.Total_cost, "with no tiers total equals subtotal plus misc cost exactly")
}

func TestComputeQuoteTierApplied(t *testing.T) {
	catalog := []models.MenuItem{menuItem("item-1", "Biryani", 100, true)}
	selections := []ItemSelection{{Item_id: "item-1", Quantity: 1}}
	tiers := []models.PricingTier{
		{Min_guests: 10, Discount_percent: 5},
		{Min_guests: 50, Discount_percent: 10},
	}

	quote, err := ComputeQuote(catalog, selections, 60, 200, tiers)
	assert.NoError(t, err)
	assert.Equal(t, 6000.0, quote.Subtotal)
	assert.Equal(t, 10.0, quote.Discount_percent)
	assert.Equal(t, 620.0, quote.Discount_amount)
	assert.Equal(t, 5580.0, quote.Total_cost)
}

func TestComputeQuoteTotalNeverNegative(t *testing.T) {
	catalog := []models.MenuItem{menuItem("item-1", "Samosa", 10, true)}
	selections := []ItemSelection{{Item_id: "item-1", Quantity: 1}}
	tiers := []models.PricingTier{{Min_guests: 1, Discount_percent: 150}}

	quote, err := ComputeQuote(catalog, selections, 5, 0, tiers)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, quote.Total_cost, "total is floored at zero even when discount exceeds 100%")
}

func TestComputeQuoteDropsUnresolvedItems(t *testing.T) {
	catalog := []models.MenuItem{
		menuItem("item-1", "Available", 100, true),
		menuItem("item-2", "Unavailable", 100, false),
	}
	selections := []ItemSelection{
		{Item_id: "item-1", Quantity: 1},
		{Item_id: "item-2", Quantity: 1},
		{Item_id: "missing", Quantity: 1},
	}

	quote, err := ComputeQuote(catalog, selections, 10, 0, nil)
	assert.NoError(t, err)
	assert.Len(t, quote.Items, 1, "unavailable and missing items are silently dropped")
	assert.Equal(t, 1000.0, quote.Subtotal)
}

func TestComputeQuotePerPlateCost(t *testing.T) {
	catalog := []models.MenuItem{menuItem("item-1", "Thali", 10, true)}
	selections := []ItemSelection{{Item_id: "item-1", Quantity: 1}}

	quote, err := ComputeQuote(catalog, selections, 3, 0, nil)
	assert.NoError(t, err)
	// 30 / 3 = 10, but verify the 2-decimal rounding on an uneven split
	assert.Equal(t, 10.0, quote.Per_plate_cost)

	quote, err = ComputeQuote(catalog, []ItemSelection{{Item_id: "item-1", Quantity: 1}}, 7, 0, nil)
	assert.NoError(t, err)
	assert.Equal(t, 10.0, quote.Per_plate_cost, "per-plate cost is subtotal over guests")
}

func TestComputeQuoteInvalidInput(t *testing.T) {
	catalog := []models.MenuItem{menuItem("item-1", "Thali", 10, true)}

	_, err := ComputeQuote(catalog, []ItemSelection{{Item_id: "item-1", Quantity: 1}}, 0, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	_, err = ComputeQuote(catalog, nil, 10, 0, nil)
	assert.ErrorIs(t, err, ErrNoItemsSelected)
}
