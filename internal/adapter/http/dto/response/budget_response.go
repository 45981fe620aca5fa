package response

import (
	"time"

	"avflow/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type BudgetItemResponse struct {
	EquipmentID string  `json:"equipment_id"`
	Quantity    int     `json:"quantity"`
	PricePerDay float64 `json:"price_per_day"`
}

type BudgetResponse struct {
	ID         string               `json:"id"`
	ClientID   string               `json:"client_id"`
	Status     string               `json:"status"`
	PickupDate string               `json:"pickup_date"`
	EventDate  string               `json:"event_date"`
	ReturnDate string               `json:"return_date"`
	Items      []BudgetItemResponse `json:"items"`
	Discount   float64              `json:"discount"`
	Total      float64              `json:"total"`
	CreatedAt  time.Time            `json:"created_at"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	items := make([]BudgetItemResponse, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, BudgetItemResponse{
			EquipmentID: it.EquipmentID,
			Quantity:    it.Quantity,
			PricePerDay: it.PricePerDay,
		})
	}
	return BudgetResponse{
		ID:         b.ID,
		ClientID:   b.ClientID,
		Status:     string(b.Status),
		PickupDate: b.PickupDate.Format(dateLayout),
		EventDate:  b.EventDate.Format(dateLayout),
		ReturnDate: b.ReturnDate.Format(dateLayout),
		Items:      items,
		Discount:   b.Discount,
		Total:      b.Total,
		CreatedAt:  b.CreatedAt,
	}
}

func FromBudgets(budgets []entities.Budget) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, FromBudget(b))
	}
	return out
}
