package usecase

import (
	"context"
	"sort"
	"time"

	"avflow/internal/domain/entities"
	"avflow/internal/usecase/interfaces"
)

// DashboardSummary is the operator's counters view: collection sizes plus the
// approved slice and its summed revenue.
type DashboardSummary struct {
	Budgets         int     `json:"budgets"`
	Equipments      int     `json:"equipments"`
	Clients         int     `json:"clients"`
	ApprovedBudgets int     `json:"approved_budgets"`
	ApprovedTotal   float64 `json:"approved_total"`
}

// AgendaEntry is one logistics event derived from a budget: the pickup, the
// event day or the return.
type AgendaEntry struct {
	BudgetID   string                `json:"budget_id"`
	Type       string                `json:"type"`
	Date       time.Time             `json:"date"`
	ClientName string                `json:"client_name"`
	Status     entities.BudgetStatus `json:"status"`
}

const (
	AgendaEntryPickup = "pickup"
	AgendaEntryEvent  = "event"
	AgendaEntryReturn = "return"
)

// IReportUseCase aggregates budgets into read-only operator views.

type IReportUseCase interface {
	Dashboard(ctx context.Context) (DashboardSummary, error)
	Agenda(ctx context.Context) ([]AgendaEntry, error)
}

type ReportUseCase struct {
	store interfaces.IEntityStore
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.IEntityStore) *ReportUseCase {
	return &ReportUseCase{store: store}
}

func (u *ReportUseCase) Dashboard(ctx context.Context) (DashboardSummary, error) {
	budgets, err := u.store.ListBudgets(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	equipments, err := u.store.ListEquipments(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	clients, err := u.store.ListClients(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	s := DashboardSummary{
		Budgets:    len(budgets),
		Equipments: len(equipments),
		Clients:    len(clients),
	}
	for _, b := range budgets {
		if b.Status == entities.BudgetStatusApproved {
			s.ApprovedBudgets++
			s.ApprovedTotal += b.Total
		}
	}
	return s, nil
}

// Agenda flattens sent and approved budgets into pickup/event/return entries
// sorted by date. Dangling client references degrade to a blank name.
func (u *ReportUseCase) Agenda(ctx context.Context) ([]AgendaEntry, error) {
	budgets, err := u.store.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := u.store.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(clients))
	for _, c := range clients {
		names[c.ID] = c.Name
	}

	entries := make([]AgendaEntry, 0, 3*len(budgets))
	for _, b := range budgets {
		if b.Status != entities.BudgetStatusApproved && b.Status != entities.BudgetStatusSent {
			continue
		}
		name := names[b.ClientID]
		entries = append(entries,
			AgendaEntry{BudgetID: b.ID, Type: AgendaEntryPickup, Date: b.PickupDate, ClientName: name, Status: b.Status},
			AgendaEntry{BudgetID: b.ID, Type: AgendaEntryEvent, Date: b.EventDate, ClientName: name, Status: b.Status},
			AgendaEntry{BudgetID: b.ID, Type: AgendaEntryReturn, Date: b.ReturnDate, ClientName: name, Status: b.Status},
		)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries, nil
}
