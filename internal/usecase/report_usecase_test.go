package usecase

import (
	"context"
	"testing"

	"avflow/internal/domain/entities"
	mock_interfaces "avflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestReportUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIEntityStore(ctrl)
	uc := NewReportUseCase(store)

	budgets := []entities.Budget{
		{ID: "b-1", Status: entities.BudgetStatusApproved, Total: 350},
		{ID: "b-2", Status: entities.BudgetStatusApproved, Total: 150},
		{ID: "b-3", Status: entities.BudgetStatusDraft, Total: 999},
	}
	store.EXPECT().ListBudgets(gomock.Any()).Return(budgets, nil)
	store.EXPECT().ListEquipments(gomock.Any()).Return(make([]entities.Equipment, 5), nil)
	store.EXPECT().ListClients(gomock.Any()).Return(make([]entities.Client, 2), nil)

	s, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Budgets != 3 || s.Equipments != 5 || s.Clients != 2 {
		t.Fatalf("unexpected counts: %+v", s)
	}
	if s.ApprovedBudgets != 2 || s.ApprovedTotal != 500 {
		t.Fatalf("unexpected approved aggregates: %+v", s)
	}
}

func TestReportUseCase_Agenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockIEntityStore(ctrl)
	uc := NewReportUseCase(store)

	budgets := []entities.Budget{
		{
			ID: "b-1", ClientID: "cl-1", Status: entities.BudgetStatusApproved,
			PickupDate: date(2024, 6, 3), EventDate: date(2024, 6, 4), ReturnDate: date(2024, 6, 5),
		},
		{
			ID: "b-2", ClientID: "ghost", Status: entities.BudgetStatusSent,
			PickupDate: date(2024, 6, 1), EventDate: date(2024, 6, 1), ReturnDate: date(2024, 6, 2),
		},
		{
			ID: "b-3", ClientID: "cl-1", Status: entities.BudgetStatusCancelled,
			PickupDate: date(2024, 6, 1), EventDate: date(2024, 6, 1), ReturnDate: date(2024, 6, 1),
		},
	}
	store.EXPECT().ListBudgets(gomock.Any()).Return(budgets, nil)
	store.EXPECT().ListClients(gomock.Any()).Return([]entities.Client{{ID: "cl-1", Name: "João Silva"}}, nil)

	entries, err := uc.Agenda(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cancelled budgets are excluded; the two remaining contribute 3 entries each.
	if len(entries) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.Before(entries[i-1].Date) {
			t.Fatalf("entries not sorted by date: %+v", entries)
		}
	}
	if entries[0].BudgetID != "b-2" || entries[0].Type != AgendaEntryPickup {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[0].ClientName != "" {
		t.Fatalf("dangling client must resolve to blank name, got %q", entries[0].ClientName)
	}
	last := entries[len(entries)-1]
	if last.BudgetID != "b-1" || last.Type != AgendaEntryReturn || last.ClientName != "João Silva" {
		t.Fatalf("unexpected last entry: %+v", last)
	}
}
