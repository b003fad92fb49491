package format

import (
	"github.com/shopspring/decimal"
	revenuedomain "github.com/stayops/revenued/internal/revenue/domain"
)

// Response is the display payload for a revenue summary. Month, year, and
// timezone are emitted as null/empty when the summary carries none (the
// all-time and fully-unresolved fallback cases).
type Response struct {
	PropertyID        string  `json:"property_id"`
	TotalRevenue      float64 `json:"total_revenue"`
	Currency          string  `json:"currency"`
	ReservationsCount int64   `json:"reservations_count"`
	Month             *int    `json:"month"`
	Year              *int    `json:"year"`
	Timezone          string  `json:"timezone"`
}

// ToResponse converts a cached summary into the display payload.
//
// This function is PURE:
// - No side effects
// - No DB access
// - Fully deterministic
//
// The cached total is a decimal string; it is re-quantized to 2 digits
// with half-up rounding before the numeric conversion, so a stale or
// foreign cache entry with extra precision still renders correctly.
func ToResponse(s revenuedomain.Summary) Response {
	total, err := decimal.NewFromString(s.Total)
	if err != nil {
		total = decimal.Zero
	}
	// decimal.Round rounds half away from zero, the display convention
	// for monetary amounts.
	amount, _ := total.Round(2).Float64()

	return Response{
		PropertyID:        s.PropertyID,
		TotalRevenue:      amount,
		Currency:          s.Currency,
		ReservationsCount: s.Count,
		Month:             s.Month,
		Year:              s.Year,
		Timezone:          s.Timezone,
	}
}
