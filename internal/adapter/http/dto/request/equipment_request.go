package request

type EquipmentRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	TotalQuantity int     `json:"total_quantity"`
	DailyRate     float64 `json:"daily_rate"`
}
