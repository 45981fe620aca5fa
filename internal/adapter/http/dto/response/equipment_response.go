package response

import "avflow/internal/domain/entities"

type EquipmentResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	TotalQuantity int     `json:"total_quantity"`
	DailyRate     float64 `json:"daily_rate"`
}

func FromEquipment(eq entities.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            eq.ID,
		Name:          eq.Name,
		Category:      eq.Category,
		TotalQuantity: eq.TotalQuantity,
		DailyRate:     eq.DailyRate,
	}
}

func FromEquipments(eqs []entities.Equipment) []EquipmentResponse {
	out := make([]EquipmentResponse, 0, len(eqs))
	for _, eq := range eqs {
		out = append(out, FromEquipment(eq))
	}
	return out
}

// AvailabilityResponse answers the stock query for one equipment and range.
type AvailabilityResponse struct {
	EquipmentID string `json:"equipment_id"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Available   int    `json:"available"`
}
