package response

import "avflow/internal/usecase"

type DashboardResponse struct {
	Budgets         int     `json:"budgets"`
	Equipments      int     `json:"equipments"`
	Clients         int     `json:"clients"`
	ApprovedBudgets int     `json:"approved_budgets"`
	ApprovedTotal   float64 `json:"approved_total"`
}

func FromDashboard(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		Budgets:         s.Budgets,
		Equipments:      s.Equipments,
		Clients:         s.Clients,
		ApprovedBudgets: s.ApprovedBudgets,
		ApprovedTotal:   s.ApprovedTotal,
	}
}

type AgendaEntryResponse struct {
	BudgetID   string `json:"budget_id"`
	Type       string `json:"type"`
	Date       string `json:"date"`
	ClientName string `json:"client_name"`
	Status     string `json:"status"`
}

func FromAgenda(entries []usecase.AgendaEntry) []AgendaEntryResponse {
	out := make([]AgendaEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AgendaEntryResponse{
			BudgetID:   e.BudgetID,
			Type:       e.Type,
			Date:       e.Date.Format(dateLayout),
			ClientName: e.ClientName,
			Status:     string(e.Status),
		})
	}
	return out
}
