package services

import (
	"testing"
	"time"

	"go-catering-management/models"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderNumberSequence(t *testing.T) {
	first := NextOrderNumber("")
	assert.Equal(t, "O-01", first)

	second := NextOrderNumber(first)
	assert.Equal(t, "O-02", second)

	third := NextOrderNumber(second)
	assert.Equal(t, "O-03", third)
}

func TestNextOrderNumberGrowsPastTwoDigits(t *testing.T) {
	assert.Equal(t, "O-100", NextOrderNumber("O-99"))
	assert.Equal(t, "O-1000", NextOrderNumber("O-999"))
}

func TestNextOrderNumberUnparseableRestartsAtOne(t *testing.T) {
	assert.Equal(t, "O-01", NextOrderNumber("O-abc"))
	assert.Equal(t, "O-01", NextOrderNumber("Q-17"))
	assert.Equal(t, "O-01", NextOrderNumber("garbage"))
}

func TestFallbackOrderNumber(t *testing.T) {
	now := time.UnixMilli(1700000012345)
	assert.Equal(t, "O-2345", FallbackOrderNumber(now))
}

func TestRecomputeTotals(t *testing.T) {
	pricing := models.PricingDetails{
		Subtotal:  1000,
		Misc_cost: 100,
		Discount:  50,
		Deposit:   200,
	}
	RecomputeTotals(&pricing)
	assert.Equal(t, 1050.0, pricing.Total)
	assert.Equal(t, 850.0, pricing.Balance)
}

func TestRecomputeTotalsOverwritesCallerValues(t *testing.T) {
	pricing := models.PricingDetails{
		Subtotal: 500,
		Total:    99999,
		Balance:  99999,
	}
	RecomputeTotals(&pricing)
	assert.Equal(t, 500.0, pricing.Total)
	assert.Equal(t, 500.0, pricing.Balance)
}

func TestCustomerSnapshot(t *testing.T) {
	name := "Asha Rao"
	email := "asha@example.com"
	phone := "9876543210"
	address := "12 Lake View Road"
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	snapshot := CustomerSnapshot(models.CustomerInfo{
		Name:    &name,
		Email:   &email,
		Phone:   &phone,
		Address: &address,
	}, at)

	assert.Equal(t, &name, snapshot.Name)
	assert.Equal(t, &email, snapshot.Email)
	assert.Equal(t, &phone, snapshot.Phone)
	assert.Equal(t, &address, snapshot.Address)
	assert.Equal(t, at, snapshot.Updated_at)
}

func TestNewTimelineEntry(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	entry := NewTimelineEntry("confirmed", "deposit received", at)
	assert.Equal(t, "confirmed", entry.Status)
	assert.Equal(t, "deposit received", entry.Note)
	assert.Equal(t, at, entry.Timestamp)
}
