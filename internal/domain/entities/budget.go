package entities

import "time"

// BudgetStatus represents the lifecycle of a rental budget (quote).
//
// Domain notes:
//   - Only BudgetStatusApproved consumes fleet capacity; the availability
//     engine ignores budgets in every other status.
//   - Transitions are unrestricted: status is a plain four-way tag and the
//     only semantic consequence of changing it is whether the budget counts
//     against stock.

type BudgetStatus string

const (
	BudgetStatusDraft     BudgetStatus = "draft"
	BudgetStatusSent      BudgetStatus = "sent"
	BudgetStatusApproved  BudgetStatus = "approved"
	BudgetStatusCancelled BudgetStatus = "cancelled"
)

// Valid reports whether s is one of the four known statuses.
func (s BudgetStatus) Valid() bool {
	switch s {
	case BudgetStatusDraft, BudgetStatusSent, BudgetStatusApproved, BudgetStatusCancelled:
		return true
	}
	return false
}

// BudgetItem is one equipment line of a budget.
//
// PricePerDay is a price snapshot captured when the item is added: later
// changes to the equipment's catalog rate must never reprice past budgets.
type BudgetItem struct {
	EquipmentID string  `json:"equipment_id"`
	Quantity    int     `json:"quantity"`
	PricePerDay float64 `json:"price_per_day"`
}

// Budget is a rental quote with a date range, line items and a computed total.
//
// The reservation window is [PickupDate, ReturnDate]; EventDate lies inside
// it and is informational only. Total is a derived snapshot persisted at
// creation time and never recomputed on status changes or catalog edits.
type Budget struct {
	ID         string       `json:"id"`
	ClientID   string       `json:"client_id"`
	Status     BudgetStatus `json:"status"`
	PickupDate time.Time    `json:"pickup_date"`
	EventDate  time.Time    `json:"event_date"`
	ReturnDate time.Time    `json:"return_date"`
	Items      []BudgetItem `json:"items"`
	Discount   float64      `json:"discount"`
	Total      float64      `json:"total"`
	CreatedAt  time.Time    `json:"created_at"`
}

// ItemFor returns the budget's line for the given equipment id, if any.
func (b Budget) ItemFor(equipmentID string) (BudgetItem, bool) {
	for _, it := range b.Items {
		if it.EquipmentID == equipmentID {
			return it, true
		}
	}
	return BudgetItem{}, false
}
