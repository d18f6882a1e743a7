package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-catering-management/models"
)

const OrderNumberPrefix = "O-"

// NextOrderNumber derives the next sequential order number from the highest
// existing one. An empty or unparseable last number restarts the sequence at 1.
func NextOrderNumber(lastNumber string) string {
	next := 1
	if strings.HasPrefix(lastNumber, OrderNumberPrefix) {
		if n, err := strconv.Atoi(strings.TrimPrefix(lastNumber, OrderNumberPrefix)); err == nil {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%02d", OrderNumberPrefix, next)
}

// FallbackOrderNumber builds a collision-prone but always-available order
// number from the last 4 digits of the epoch millis. Used only when the
// sequential lookup fails.
func FallbackOrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return OrderNumberPrefix + millis[len(millis)-4:]
}

// RecomputeTotals rewrites the derived fields of a pricing block from its
// caller-supplied components: total = subtotal + misc_cost - discount,
// balance = total - deposit.
func RecomputeTotals(pricing *models.PricingDetails) {
	pricing.Total = pricing.Subtotal + pricing.Misc_cost - pricing.Discount
	pricing.Balance = pricing.Total - pricing.Deposit
}

// CustomerSnapshot copies the booking's contact details into the customer
// record kept per email.
func CustomerSnapshot(info models.CustomerInfo, at time.Time) models.Customer {
	return models.Customer{
		Name:       info.Name,
		Email:      info.Email,
		Phone:      info.Phone,
		Address:    info.Address,
		Updated_at: at,
	}
}

// NewTimelineEntry builds a timeline record for a status change.
func NewTimelineEntry(status string, note string, at time.Time) models.TimelineEntry {
	return models.TimelineEntry{
		Status:    status,
		Timestamp: at,
		Note:      note,
	}
}
