package usecase

import (
	"math"
	"time"

	"avflow/internal/domain/entities"
)

// RentalDays counts billable days for the [pickup, ret] range inclusively:
// a same-day rental is 1 day, pickup D with return D+2 is 3 days. Partial
// days round up before the inclusive +1.
func RentalDays(pickup, ret time.Time) int {
	days := int(math.Ceil(ret.Sub(pickup).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// ComputeTotal derives a budget total from its line items and date range.
//
// Discount is a flat currency amount subtracted from the subtotal; the
// result is floored at zero. Quantities and per-day prices are taken as
// given (price snapshots), never re-read from the catalog.
func ComputeTotal(items []entities.BudgetItem, pickup, ret time.Time, discount float64) float64 {
	days := RentalDays(pickup, ret)
	subtotal := 0.0
	for _, it := range items {
		subtotal += float64(it.Quantity) * it.PricePerDay * float64(days)
	}
	return math.Max(0, subtotal-discount)
}
