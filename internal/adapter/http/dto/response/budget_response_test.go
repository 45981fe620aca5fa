package response

import (
	"testing"
	"time"

	"avflow/internal/domain/entities"
)

func TestFromBudget(t *testing.T) {
	now := time.Now().UTC()
	b := entities.Budget{
		ID:         "b-1",
		ClientID:   "cl-1",
		Status:     entities.BudgetStatusApproved,
		PickupDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EventDate:  time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
		ReturnDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		Items:      []entities.BudgetItem{{EquipmentID: "eq-1", Quantity: 2, PricePerDay: 100}},
		Discount:   50,
		Total:      350,
		CreatedAt:  now,
	}

	res := FromBudget(b)
	if res.ID != "b-1" || res.ClientID != "cl-1" || res.Status != "approved" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.PickupDate != "2024-06-01" || res.EventDate != "2024-06-02" || res.ReturnDate != "2024-06-03" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].EquipmentID != "eq-1" || res.Items[0].PricePerDay != 100 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.Discount != 50 || res.Total != 350 {
		t.Fatalf("unexpected amounts: %+v", res)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected created_at: %v", res.CreatedAt)
	}
}

func TestFromBudgets(t *testing.T) {
	out := FromBudgets([]entities.Budget{{ID: "b-1"}, {ID: "b-2"}})
	if len(out) != 2 || out[0].ID != "b-1" || out[1].ID != "b-2" {
		t.Fatalf("unexpected list: %+v", out)
	}
}
